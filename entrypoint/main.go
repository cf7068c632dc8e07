package main

import (
	"fmt"
	"gdtools.org/lemmatizer/api"
	"gdtools.org/lemmatizer/lemmatizer"
	"gdtools.org/lemmatizer/lexicon"
	"gdtools.org/lemmatizer/logger"
	"gdtools.org/lemmatizer/pipeline"
	"gdtools.org/lemmatizer/types"
	"gdtools.org/lemmatizer/utils"
	"gdtools.org/lemmatizer/worker"
	"github.com/kelseyhightower/envconfig"
	"net/http"
	"os"
	"path"
	"time"
)

type Config struct {
	ResourcesPath string `envconfig:"GDL_RESOURCES_PATH" required:"true"`
	ConfigPath    string `envconfig:"GDL_CONFIG_PATH" required:"true"`
	RestAPIActive bool   `envconfig:"GDL_REST_API_ACTIVE" default:"true"`
	RestAPIPort   string `envconfig:"GDL_REST_API_PORT" default:"10000"`
	WorkerActive  bool   `envconfig:"GDL_WORKER_ACTIVE" default:"false"`
}

const pipelineStartMaxRetries = 5

func main() {
	logger.SetupLogging()
	mainLogger := logger.NewLogger("Main")

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		mainLogger.Fatal().Caller().Err(err).Msg("Failed to read environment")
	}

	lex, err := lexicon.Load(path.Join(config.ResourcesPath, "lemmatizer"))
	if err != nil {
		mainLogger.Fatal().Caller().Err(err).Msg("Failed to load lexicon")
	}
	lem := lemmatizer.New(lex)

	var ppln pipeline.Pipeline
	for retry := 0; ; retry++ {
		if retry == pipelineStartMaxRetries {
			mainLogger.Fatal().Msgf("Could not start pipelines after %d retries, exiting", retry)
		}
		cfgs, err := types.LoadConfigurations(config.ConfigPath)
		if err != nil {
			mainLogger.Err(err).Msg("Failed to load configurations. Retrying in 5 sec")
			time.Sleep(5 * time.Second)
			continue
		}
		mainLogger.Info().Msgf("Loaded %d configurations", len(cfgs))

		ppln, err = pipeline.Treebank(pipeline.GetTreebankParams(config.ResourcesPath, lem, cfgs))
		if err != nil {
			mainLogger.Err(err).Msg("Failed to start treebank pipeline. Retrying in 5 sec")
			time.Sleep(5 * time.Second)
			continue
		}
		break
	}
	utils.GlobalStringStore().Lock()
	mainLogger.Info().Msg("Pipelines loaded")

	if !config.RestAPIActive && !config.WorkerActive {
		mainLogger.Warn().Msg("Neither REST API nor worker is active, nothing to do")
		os.Exit(0)
	}

	if config.RestAPIActive {
		apiRequest := &api.Request{
			Pipeline:   ppln,
			Lemmatizer: lem,
		}
		host := fmt.Sprintf(":%s", config.RestAPIPort)
		serve := func() {
			mainLogger.Info().Msgf("REST API on %s", host)
			err := http.ListenAndServe(host, apiRequest.Routes())
			mainLogger.Fatal().Caller().Err(err).Msg("REST API stopped with error")
		}
		if !config.WorkerActive {
			serve()
		}
		go serve()
	}

	mainLogger.Info().Msg("Start lemmatizer worker")
	for {
		rmqWorker, err := worker.New(ppln)
		if err != nil {
			mainLogger.Fatal().Caller().Err(err).Msg("Could not initialize RMQ worker")
		}
		if err = rmqWorker.StartWorker(); err != nil {
			mainLogger.Err(err).Msg("Worker returned with error. Launching new in 5 seconds")
			time.Sleep(5 * time.Second)
		}
	}
}
