package controllers

import (
	"northstar/config"
	"northstar/tools"
	"northstar/workers"
)

// Shared collaborators, injected from main. Keeps credentials out of
// ambient environment reads inside handlers.
var (
	conf   config.Configuration
	llm    *tools.GeminiClient
	mailer *tools.Mailer
	runner *workers.Runner
)

func Setup(cfg config.Configuration, client *tools.GeminiClient, m *tools.Mailer, r *workers.Runner) {
	conf = cfg
	llm = client
	mailer = m
	runner = r
}
