// Package cli wires configuration, logging and MongoDB into cobra commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mehrbod2002/brokerdb/internal/config"
	"github.com/mehrbod2002/brokerdb/internal/logging"
	"github.com/mehrbod2002/brokerdb/internal/repository"
	"github.com/mehrbod2002/brokerdb/internal/schema"
	"github.com/mehrbod2002/brokerdb/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// App holds what every command needs once flags are parsed. Out carries
// command results; logs go to the command's stderr.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Out    io.Writer

	viper *viper.Viper
}

func NewRootCmd() *cobra.Command {
	app := &App{Out: os.Stdout, viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "brokerdb",
		Short: "Provision the stock brokerage MongoDB database",
		Long: `brokerdb creates the validated collections, indexes and seed symbols
of the stock brokerage database.

Running it without a subcommand is the same as 'brokerdb apply'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runApply(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("mongo-uri", "", "MongoDB connection string (env MONGO_URI)")
	flags.String("database", "", "target database (env MONGO_DATABASE)")
	flags.String("log-level", "", "log level: debug, info, warn, error (env LOG_LEVEL)")
	flags.String("log-file", "", "also write JSON logs to this rotating file (env LOG_FILE)")
	flags.Bool("debug", false, "enable debug logging")

	app.bind(flags.Lookup("mongo-uri"), "MONGO_URI")
	app.bind(flags.Lookup("database"), "MONGO_DATABASE")
	app.bind(flags.Lookup("log-level"), "LOG_LEVEL")
	app.bind(flags.Lookup("log-file"), "LOG_FILE")

	flags.String("seed-mode", "", "seeding: insert, skip-existing or none (env SEED_MODE)")
	flags.Bool("update-validators", false, "replace conflicting validators with collMod (env UPDATE_VALIDATORS)")
	flags.String("run-log-collection", "", "record each step in this collection (env RUN_LOG_COLLECTION)")

	app.bind(flags.Lookup("seed-mode"), "SEED_MODE")
	app.bind(flags.Lookup("update-validators"), "UPDATE_VALIDATORS")
	app.bind(flags.Lookup("run-log-collection"), "RUN_LOG_COLLECTION")

	rootCmd.AddCommand(
		newApplyCmd(app),
		newVerifyCmd(app),
		newPlanCmd(app),
		newServeCmd(app),
		newTokenCmd(app),
	)
	return rootCmd
}

func (a *App) bind(flag *pflag.Flag, key string) {
	_ = a.viper.BindPFlag(key, flag)
}

func (a *App) load(cmd *cobra.Command) error {
	a.Out = cmd.OutOrStdout()
	cfg, err := config.LoadFrom(a.viper)
	if err != nil {
		return err
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.LogLevel = "debug"
	}
	a.Config = cfg

	logCfg := logging.DefaultLogConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.FilePath = cfg.LogFile
	logCfg.Out = cmd.ErrOrStderr()
	a.Logger = logging.NewLogger(logCfg)
	return nil
}

func (a *App) connect(ctx context.Context) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, a.Config.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(a.Config.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	a.Logger.Debug().Str("database", a.Config.Database).Msg("Connected to MongoDB")
	return client, nil
}

func (a *App) disconnect(client *mongo.Client) {
	if err := client.Disconnect(context.Background()); err != nil {
		a.Logger.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}

type appServices struct {
	bootstrap service.BootstrapService
	symbols   service.SymbolService
	logs      service.LogService
	userRepo  repository.UserRepository
}

func (a *App) services(client *mongo.Client) appServices {
	cfg := a.Config
	schemaRepo := repository.NewSchemaRepository(client, cfg.Database, cfg.OperationTimeout)
	symbolRepo := repository.NewSymbolRepository(client, cfg.Database, schema.CollectionSymbols, cfg.OperationTimeout)
	userRepo := repository.NewUserRepository(client, cfg.Database, schema.CollectionUsers, cfg.OperationTimeout)

	var logRepo repository.LogRepository
	if cfg.RunLogCollection != "" {
		logRepo = repository.NewLogRepository(client, cfg.Database, cfg.RunLogCollection, cfg.OperationTimeout)
	}
	logService := service.NewLogService(logRepo)

	bootstrap := service.NewBootstrapService(schema.DefaultPlan(cfg.Database), schemaRepo, symbolRepo, logService, a.Logger, service.Options{
		SeedMode:         service.SeedMode(cfg.SeedMode),
		UpdateValidators: cfg.UpdateValidators,
	})

	return appServices{
		bootstrap: bootstrap,
		symbols:   service.NewSymbolService(symbolRepo),
		logs:      logService,
		userRepo:  userRepo,
	}
}
