package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/SewwRathnayaka/SOA/orchestrator-service/application"
	"github.com/SewwRathnayaka/SOA/orchestrator-service/domain"
	"github.com/SewwRathnayaka/SOA/orchestrator-service/handlers"
	"github.com/SewwRathnayaka/SOA/orchestrator-service/infrastructure"
	"github.com/SewwRathnayaka/SOA/shared/auth"
	"github.com/SewwRathnayaka/SOA/shared/events"
	sharedinfra "github.com/SewwRathnayaka/SOA/shared/infrastructure"
	"github.com/SewwRathnayaka/SOA/shared/registry"
	"github.com/SewwRathnayaka/SOA/shared/telemetry"
)

const (
	queueDeclareAttempts = 5
	queueDeclareBackoff  = 5 * time.Second
)

type Dependencies struct {
	// Database (nil when the in-memory event log is configured)
	DB *sqlx.DB

	// Domain
	Definitions *domain.DefinitionRegistry
	RunHistory  *infrastructure.RunStore
	Contexts    *infrastructure.TransactionContextStore

	// Use Cases
	ExecuteWorkflow      *application.ExecuteWorkflow
	RegisterWorkflow     *application.RegisterWorkflow
	GetWorkflow          *application.GetWorkflow
	ListWorkflows        *application.ListWorkflows
	GetRun               *application.GetRun
	ListRuns             *application.ListRuns
	GetOrderStatus       *application.GetOrderStatus
	GetSagaEvents        *application.GetSagaEvents
	StartOrderSaga       *application.StartOrderSaga
	ContinueAfterPayment *application.ContinueAfterPayment
	FinishAfterShipping  *application.FinishAfterShipping

	// HTTP Handlers
	OrchestratorHandlers *handlers.OrchestratorHandlers

	// Messaging
	SQSClient *sqs.Client
	QueueURLs map[string]string
	Consumers []*sharedinfra.QueueConsumer

	// Service registry
	RegistryClient *registry.Client

	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{}

	tel, telShutdown, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    config.ServiceName,
		ServiceVersion: "1.0.0",
		OTLPEndpoint:   config.Telemetry.OTLPEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init telemetry: %w", err)
	}
	deps.Telemetry = tel
	deps.TelemetryShutdown = telShutdown

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(config.AWS.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			config.AWS.AccessKeyID, config.AWS.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	deps.SQSClient = sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if config.AWS.EndpointSQS != "" {
			o.BaseEndpoint = aws.String(config.AWS.EndpointSQS)
		}
	})
	snsClient := sns.NewFromConfig(awsCfg, func(o *sns.Options) {
		if config.AWS.EndpointSNS != "" {
			o.BaseEndpoint = aws.String(config.AWS.EndpointSNS)
		}
	})

	publisher, queueURLs := buildSagaTransport(ctx, deps.SQSClient, queueDeclareAttempts, queueDeclareBackoff, logger)
	deps.QueueURLs = queueURLs

	notifier := sharedinfra.NewSNSNotificationPublisher(snsClient, config.AWS.SNSTopicArn)

	eventLog, err := buildEventLog(config, deps)
	if err != nil {
		return nil, err
	}

	// Domain state
	deps.Definitions = domain.NewDefinitionRegistry()
	if err := deps.Definitions.Register(domain.PlaceOrderDefinition()); err != nil {
		return nil, fmt.Errorf("failed to register built-in workflow: %w", err)
	}
	loaded, err := domain.LoadDefinitions(config.WorkflowDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow definitions: %w", err)
	}
	for _, definition := range loaded {
		if err := deps.Definitions.Register(definition); err != nil {
			return nil, fmt.Errorf("failed to register workflow %s: %w", definition.Name, err)
		}
	}

	deps.RunHistory = infrastructure.NewRunStore(config.Saga.RunHistoryCapacity)
	deps.Contexts = infrastructure.NewTransactionContextStore(
		time.Duration(config.Saga.ContextTTLMinutes)*time.Minute, config.Saga.ContextCapacity)

	// Outbound service calls
	deps.RegistryClient = registry.NewClient(config.Registry.URL, logger)
	tokens := auth.NewTokenIssuer(config.JWTSecret, config.ServiceName)
	caller := infrastructure.NewServiceInvoker(deps.RegistryClient, tokens, logger)

	// Use cases
	deps.ExecuteWorkflow = application.NewExecuteWorkflow(deps.Definitions, caller, deps.RunHistory, logger)
	deps.RegisterWorkflow = application.NewRegisterWorkflow(deps.Definitions, logger)
	deps.GetWorkflow = application.NewGetWorkflow(deps.Definitions)
	deps.ListWorkflows = application.NewListWorkflows(deps.Definitions)
	deps.GetRun = application.NewGetRun(deps.RunHistory)
	deps.ListRuns = application.NewListRuns(deps.RunHistory)
	deps.GetOrderStatus = application.NewGetOrderStatus(caller, logger)
	deps.GetSagaEvents = application.NewGetSagaEvents(eventLog)
	deps.StartOrderSaga = application.NewStartOrderSaga(deps.Contexts, publisher, notifier, eventLog, tel, logger)
	deps.ContinueAfterPayment = application.NewContinueAfterPayment(deps.Contexts, publisher, notifier, eventLog, tel, logger)
	deps.FinishAfterShipping = application.NewFinishAfterShipping(caller, notifier, eventLog, tel, logger)

	// Handlers
	deps.OrchestratorHandlers = handlers.NewOrchestratorHandlers(
		deps.ExecuteWorkflow,
		deps.RegisterWorkflow,
		deps.GetWorkflow,
		deps.ListWorkflows,
		deps.GetRun,
		deps.ListRuns,
		deps.GetOrderStatus,
		deps.GetSagaEvents,
		publisher,
		logger,
		config.JWTSecret,
	)

	if queueURLs != nil {
		sagaHandlers := handlers.NewSagaEventHandlers(
			deps.StartOrderSaga, deps.ContinueAfterPayment, deps.FinishAfterShipping, logger)
		for queue, handler := range sagaHandlers.Handlers() {
			deps.Consumers = append(deps.Consumers,
				sharedinfra.NewQueueConsumer(deps.SQSClient, queue, queueURLs[queue], handler, logger))
		}
	}

	return deps, nil
}

// buildSagaTransport declares the saga queues and builds their publisher.
// Exhausting the declaration retry budget disables the queue-driven saga for
// the life of the process: no publisher, no consumers, and the synchronous
// workflow API keeps serving on its own.
func buildSagaTransport(ctx context.Context, client sharedinfra.SQSAPI, attempts int, backoff time.Duration, logger *slog.Logger) (events.QueuePublisher, map[string]string) {
	queueURLs, err := sharedinfra.EnsureQueues(ctx, client, events.AllQueues(), attempts, backoff, logger)
	if err != nil {
		logger.Error("queue declaration failed, saga coordinator disabled until restart", "error", err)
		return nil, nil
	}
	return sharedinfra.NewSQSQueuePublisher(client, queueURLs), queueURLs
}

func buildEventLog(config *Config, deps *Dependencies) (events.EventLog, error) {
	if config.Saga.EventLog != "postgres" {
		return sharedinfra.NewInMemoryEventLog(0), nil
	}

	db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.DB = db

	eventLog, err := sharedinfra.NewPostgresEventLog(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init event log schema: %w", err)
	}
	return eventLog, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}
