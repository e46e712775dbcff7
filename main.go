package main

import (
	"context"
	"flag"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/somireddylaw/feedback-api/api"
	"github.com/somireddylaw/feedback-api/external/mailer"
	"github.com/somireddylaw/feedback-api/schema"
	"github.com/somireddylaw/feedback-api/store"
)

func initialize(configFile string) {
	viper.SetConfigFile(configFile)
	viper.AutomaticEnv()
	viper.SetEnvPrefix("feedback")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.addr", ":8083")
	viper.SetDefault("mongo.conn", "mongodb://127.0.0.1:27017/?compressors=disabled")
	viper.SetDefault("mongo.database", "feedback")
	viper.SetDefault("mail.smtp_port", 587)

	if err := viper.ReadInConfig(); err != nil {
		log.WithError(err).Warn("no config file loaded, using environment")
	}

	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "path to the configuration file")
	flag.Parse()

	initialize(configFile)

	connURI := viper.GetString("mongo.conn")
	database := viper.GetString("mongo.database")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connURI))
	if err != nil {
		log.WithError(err).Fatal("fail to connect mongo database")
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.WithError(err).Fatal("fail to ping mongo database")
	}

	if err := schema.NewMongoDBIndexer(connURI, database).IndexAll(); err != nil {
		log.WithError(err).Fatal("fail to create database indexes")
	}

	mongoStore := store.NewMongoStore(client, database)

	adminEmail := viper.GetString("admin.email")
	if adminEmail == "" {
		log.Fatal("missing configuration: admin.email")
	}
	if err := mongoStore.EnsureAdminAccount(adminEmail, viper.GetString("admin.password")); err != nil {
		log.WithError(err).Fatal("fail to seed admin account")
	}

	jwtSecret := viper.GetString("jwt.secret")
	if jwtSecret == "" {
		log.Fatal("missing configuration: jwt.secret")
	}

	notifier := mailer.New(
		viper.GetString("mail.smtp_host"),
		viper.GetInt("mail.smtp_port"),
		viper.GetString("mail.username"),
		viper.GetString("mail.password"),
		adminEmail,
	)

	server := api.NewServer(mongoStore, notifier, []byte(jwtSecret), adminEmail, viper.GetBool("server.trace"))

	log.WithField("addr", viper.GetString("server.addr")).Info("server starting")
	if err := server.Run(viper.GetString("server.addr")); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
