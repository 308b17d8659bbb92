package main

import (
	"net/http"
	"os"

	"github.com/aureliajewels/jewelry-cms/app/cmd"
	"github.com/aureliajewels/jewelry-cms/app/configs"
	"github.com/aureliajewels/jewelry-cms/app/routes"
	"github.com/aureliajewels/jewelry-cms/app/utils/sessions"
	"github.com/sirupsen/logrus"
)

func main() {
	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		logrus.Fatalf("Session keys missing: %v (run `jewelry-cms generate-keys`)", err)
	}
	if env.CSRFKey == "" {
		logrus.Fatal("CSRF_KEY is not set (run `jewelry-cms generate-keys`)")
	}

	db, err := configs.OpenConnection()
	if err != nil {
		logrus.Fatalf("DB connection failed: %v", err)
	}
	logrus.Info("Database connected")

	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	router := routes.NewRouter(db, env, sessionStore)

	addr := env.Port
	if addr == "" {
		addr = ":8080"
	}
	server := http.Server{
		Addr:    addr,
		Handler: router,
	}

	logrus.Infof("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Fatalf("Server stopped: %v", err)
	}
}
