package service

import (
	"context"
	"io"
	"os"

	"github.com/cleberrangel/planning-poker/internal/config"
	"github.com/cleberrangel/planning-poker/internal/logger"
	"github.com/cleberrangel/planning-poker/internal/metrics"
	"github.com/cleberrangel/planning-poker/internal/model"
	"github.com/cleberrangel/planning-poker/internal/poker"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ExtremesService valida a rodada e delega a seleção dos extremos ao poker
type ExtremesService struct {
	metrics *metrics.Metrics
}

// New inicializa o logger a partir da configuração e cria o serviço
// com as métricas globais
func New(cfg *config.Config) *ExtremesService {
	return newWithOutput(os.Stdout, cfg)
}

func newWithOutput(out io.Writer, cfg *config.Config) *ExtremesService {
	logger.InitWithWriter(out, cfg.LogLevel, cfg.LogJSON, cfg.ServiceName)
	logger.Global().Debug().
		Str("log_level", cfg.LogLevel).
		Bool("log_json", cfg.LogJSON).
		Msg("Serviço de extremos iniciado")
	return NewExtremesService()
}

// NewExtremesService cria o serviço usando as métricas globais
func NewExtremesService() *ExtremesService {
	return NewExtremesServiceWithMetrics(metrics.Get())
}

// NewExtremesServiceWithMetrics cria o serviço com uma instância de métricas própria
func NewExtremesServiceWithMetrics(m *metrics.Metrics) *ExtremesService {
	return &ExtremesService{metrics: m}
}

// Identify retorna a menor e a maior estimativa da rodada.
// Uma lista nil é rejeitada com model.ErrNilEstimates; uma lista vazia é válida.
func (s *ExtremesService) Identify(ctx context.Context, estimates []poker.Estimate) (poker.Extremes, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithOperationID(ctx, uuid.New().String())
	log := logger.Get(ctx)

	if estimates == nil {
		s.metrics.IncrementRoundRejected()
		log.Warn().Err(model.ErrNilEstimates).Msg("Rodada rejeitada")
		return poker.Extremes{}, model.ErrNilEstimates
	}

	extremes := poker.IdentifyExtremes(estimates)
	s.metrics.IncrementRoundEvaluated(len(estimates), extremes.HasLowest())

	event := log.Info().Int("estimates", len(estimates))
	addEstimate(event, "lowest", extremes.Lowest)
	addEstimate(event, "highest", extremes.Highest)
	event.Msg("Extremos identificados")

	return extremes, nil
}

func addEstimate(event *zerolog.Event, key string, e *poker.Estimate) {
	if e == nil {
		event.Bool(key+"_absent", true)
		return
	}
	event.Str(key+"_name", e.Name).Int(key+"_effort", e.Effort)
}
