package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/rehman-travels/visabot/server/internal/agent/dataset"
	"github.com/rehman-travels/visabot/server/internal/agent/engine"
	"github.com/rehman-travels/visabot/server/internal/agent/extract"
	"github.com/rehman-travels/visabot/server/internal/agent/intent"
	"github.com/rehman-travels/visabot/server/internal/agent/kgraph"
	"github.com/rehman-travels/visabot/server/internal/agent/llm"
	"github.com/rehman-travels/visabot/server/internal/agent/model"
	"github.com/rehman-travels/visabot/server/internal/agent/registry"
	"github.com/rehman-travels/visabot/server/internal/agent/repo"
	"github.com/rehman-travels/visabot/server/internal/agent/respond"
	"github.com/rehman-travels/visabot/server/internal/core"
	logx "github.com/rehman-travels/visabot/server/pkg/logger"
	redisx "github.com/rehman-travels/visabot/server/pkg/redis"
)

type AppConfig struct {
	Environment  string `envconfig:"ENVIRONMENT" default:"development"`
	Conversation model.ConversationConfig
	Classifier   model.ClassifierConfig
	Predictor    model.PredictorModelConfig
	Response     model.ResponseModelConfig
	Prompt       model.ResponsePromptConfig
	Dataset      model.DatasetConfig
	LLM          llm.Config
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("no .env file found, using process environment")
	}

	var cfg AppConfig
	envconfig.MustProcess("", &cfg)

	env := core.ParseEnvironment(cfg.Environment)
	logx.Init(logx.LoggerOpts{Environment: env})

	ctx := context.Background()

	rows, err := dataset.Load(cfg.Dataset.Path)
	if err != nil {
		logx.Fatal().Err(err).Str("path", cfg.Dataset.Path).Msg("cannot load visa dataset")
	}

	reg := registry.New()
	graph := kgraph.Build(reg, rows)
	ext := extract.New(reg)

	sessionRepo := buildSessionRepo(cfg.Conversation)
	predictor, responder := buildLLM(ctx, cfg)
	templates := respond.New(time.Now().UnixNano())

	eng := engine.New(engine.Options{
		Registry:   reg,
		Extractor:  ext,
		Classifier: intent.New(ext, predictor, cfg.Classifier),
		Graph:      graph,
		Templates:  templates,
		Responder:  responder,
		Repo:       sessionRepo,
		Config:     cfg.Conversation,
	})

	runREPL(ctx, eng, templates)
}

// buildSessionRepo wires Redis when REDIS_URL is configured and falls back
// to in-process memory otherwise.
func buildSessionRepo(cfg model.ConversationConfig) model.SessionRepository {
	if os.Getenv("REDIS_URL") == "" {
		logx.Info().Msg("REDIS_URL not set, using in-memory session store")
		return repo.NewMemorySessionRepository()
	}

	var redisCfg redisx.Config
	envconfig.MustProcess("redis", &redisCfg)

	ttl, err := time.ParseDuration(cfg.TTL)
	if err != nil {
		logx.Warn().Err(err).Str("ttl", cfg.TTL).Msg("bad conversation TTL, using 15m")
		ttl = 15 * time.Minute
	}

	return repo.NewRedisSessionRepository(redisCfg.MustNew(), ttl)
}

// buildLLM constructs the generative collaborators. Both are optional; the
// deterministic pipeline works without them.
func buildLLM(ctx context.Context, cfg AppConfig) (model.IntentPredictor, model.Responder) {
	if cfg.LLM.GeminiAPIKey == "" {
		logx.Info().Msg("GEMINI_API_KEY not set, running without generative collaborators")
		return nil, nil
	}

	predictorModel, err := llm.NewGeminiChatModel(ctx, cfg.LLM.GeminiAPIKey,
		cfg.Predictor.Model, cfg.Predictor.MaxTokens, cfg.Predictor.Temperature)
	if err != nil {
		logx.Fatal().Err(err).Msg("cannot create predictor model")
	}

	responderModel, err := llm.NewGeminiChatModel(ctx, cfg.LLM.GeminiAPIKey,
		cfg.Response.Model, cfg.Response.MaxTokens, cfg.Response.Temperature)
	if err != nil {
		logx.Fatal().Err(err).Msg("cannot create responder model")
	}

	return llm.NewGeminiPredictor(predictorModel), llm.NewGeminiResponder(responderModel, cfg.Prompt)
}

func runREPL(ctx context.Context, eng *engine.Engine, templates *respond.Templates) {
	const sessionID = "local"

	fmt.Println(templates.Welcome())
	fmt.Println("Type a message, 'reset' to start over, or 'quit' to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			fmt.Println(templates.Goodbye())
			return
		case "reset":
			eng.ResetSession(ctx, sessionID)
			fmt.Println("session cleared")
			continue
		}

		fmt.Println(eng.HandleMessage(ctx, sessionID, line))
	}
}
