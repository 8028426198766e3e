package deps

import (
	"brainbox/internal/config"
	"brainbox/internal/core/domain/chat"
	"brainbox/internal/core/domain/knowledge"
	dl "brainbox/internal/core/domain/logging"
	drl "brainbox/internal/core/domain/rate_limiter"
	"brainbox/internal/core/domain/reminder"
	dbhistory "brainbox/internal/db/history"
	dbknowledge "brainbox/internal/db/knowledge"
	dbreminder "brainbox/internal/db/reminder"
	"brainbox/internal/implementations/gemini"
	googletts "brainbox/internal/implementations/google_tts"
	"brainbox/internal/implementations/identity"
	"brainbox/internal/implementations/logging"
	ratelimiter "brainbox/internal/implementations/rate_limiter"
	"brainbox/internal/implementations/serpapi"
	textextractor "brainbox/internal/implementations/text_extractor"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	Redis *redis.Client
	Mongo *mongo.Client

	Now func() time.Time

	ReminderRepository  reminder.Repository
	HistoryRepository   chat.HistoryRepository
	KnowledgeRepository knowledge.Repository

	RateLimiter drl.RateLimiter

	ReminderIdentityGenerator reminder.IdentityGenerator

	TextGenerator         chat.TextGenerator
	ImageTextRecognizer   knowledge.ImageTextRecognizer
	DocumentTextExtractor knowledge.DocumentTextExtractor
	WebSearcher           chat.WebSearcher
	SpeechSynthesizer     chat.SpeechSynthesizer
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closeRedisClient := deps.initRedisClient()
	closeMongoClient := deps.initMongoClient()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.initFileRepositories()
	deps.initHistoryRepository()

	if deps.Redis != nil {
		deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	} else {
		deps.RateLimiter = ratelimiter.NewLocal(deps.Now)
	}

	deps.ReminderIdentityGenerator = identity.NewUUID()

	closeGemini := deps.initGemini()
	deps.WebSearcher = serpapi.New(
		deps.Config.SerpAPIURL,
		deps.Config.SerpAPIKey,
		deps.Config.SearchTimeout,
	)
	closeSpeechSynthesizer := deps.initSpeechSynthesizer()

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeSpeechSynthesizer,
			closeGemini,
			closeMongoClient,
			closeRedisClient,
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initRedisClient() func() {
	if deps.Config.RedisURL == "" {
		deps.Logger.Info(context.Background(), "Redis is not configured, using in-process rate limiter.")
		return func() {}
	}

	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initMongoClient() func() {
	if deps.Config.MongoURI == "" {
		deps.Logger.Info(context.Background(), "MongoDB is not configured, chat history is kept in a file.")
		return func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(deps.Config.MongoURI))
	if err != nil {
		deps.Logger.Error(ctx, "Could not connect to MongoDB.", dl.Entry("err", err))
		panic(err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		deps.Logger.Error(ctx, "Could not ping MongoDB.", dl.Entry("err", err))
		panic(err)
	}
	deps.Mongo = client
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		deps.Logger.Info(ctx, "Shutting down MongoDB connection.")
		client.Disconnect(ctx)
		deps.Logger.Info(ctx, "MongoDB connection shut down.")
	}
}

func (deps *Deps) initFileRepositories() {
	reminderRepository, err := dbreminder.NewFileReminderRepository(deps.Config.RemindersPath())
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not open reminder store.", dl.Entry("err", err))
		panic(err)
	}
	deps.ReminderRepository = reminderRepository

	knowledgeRepository, err := dbknowledge.NewFileKnowledgeRepository(deps.Config.DataDir)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not open knowledge store.", dl.Entry("err", err))
		panic(err)
	}
	deps.KnowledgeRepository = knowledgeRepository
}

func (deps *Deps) initHistoryRepository() {
	if deps.Mongo != nil {
		deps.HistoryRepository = dbhistory.NewMongoHistoryRepository(
			deps.Mongo.Database(deps.Config.MongoDatabase),
		)
		return
	}

	historyRepository, err := dbhistory.NewFileHistoryRepository(deps.Config.HistoryPath())
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not open chat history.", dl.Entry("err", err))
		panic(err)
	}
	deps.HistoryRepository = historyRepository
}

func (deps *Deps) initGemini() func() {
	if deps.Config.GoogleAPIKey == "" {
		deps.Logger.Warning(context.Background(), "GOOGLE_API_KEY is not set, Gemini requests will fail.")
	}

	client, err := gemini.New(
		context.Background(),
		deps.Logger,
		deps.Config.GoogleAPIKey,
		deps.Config.GeminiModels,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create Gemini client.", dl.Entry("err", err))
		panic(err)
	}
	deps.TextGenerator = client
	deps.ImageTextRecognizer = client
	deps.DocumentTextExtractor = textextractor.New(client)
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Gemini client.")
		client.Close()
		deps.Logger.Info(context.Background(), "Gemini client shut down.")
	}
}

func (deps *Deps) initSpeechSynthesizer() func() {
	synthesizer, err := googletts.New(
		context.Background(),
		deps.Config.GoogleTTSCredentialsFile,
		deps.Config.TTSDir,
		deps.Config.TTSURLPrefix,
	)
	if err != nil {
		deps.Logger.Warning(
			context.Background(),
			"Text-to-speech is disabled.",
			dl.Entry("err", err),
		)
		deps.SpeechSynthesizer = googletts.Disabled{}
		return func() {}
	}

	deps.SpeechSynthesizer = synthesizer
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down text-to-speech client.")
		synthesizer.Close()
		deps.Logger.Info(context.Background(), "Text-to-speech client shut down.")
	}
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != nil {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn.String(),
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
