package main

import (
	"log"
	"os"
	"time"

	"northstar/config"
	"northstar/controllers"
	dbpkg "northstar/db"
	"northstar/router"
	"northstar/tools"
	"northstar/workers"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := "config.json"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	conf := config.Get(configPath)

	dbpkg.SetConfigurations(conf)
	database, err := dbpkg.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	llm := tools.NewGeminiClient(conf.AI.ApiKey, time.Duration(conf.AI.TimeoutSeconds)*time.Second)
	mailer := tools.NewMailer(conf.Mail.ApiKey, conf.Mail.FromEmail, conf.Mail.FromName)
	runner := workers.NewRunner(database, llm, conf.AI.ProfileModel, time.Duration(conf.AI.TimeoutSeconds)*time.Second)

	controllers.Setup(conf, llm, mailer, runner)

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(database))
	router.Initialize(r)

	log.Printf("Northstar listening on :%s", conf.ApiPort)
	log.Fatal(r.Run(":" + conf.ApiPort))
}
