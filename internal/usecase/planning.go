package usecase

import (
	"context"

	"FinPlan/internal/domain/models"
	domsvc "FinPlan/internal/domain/service"
	"FinPlan/internal/services/projection"
	applogger "FinPlan/pkg/logger"
)

// PlanningService runs the projection engine, optionally informed by market data.
type PlanningService struct {
	data domsvc.MarketData
	log  *applogger.Logger
}

func NewPlanningService(data domsvc.MarketData, l *applogger.Logger) *PlanningService {
	if l == nil {
		l = applogger.NewNop()
	}
	return &PlanningService{data: data, log: l.Component("planning")}
}

// BuildPlans computes the standard scenarios. With a country it also reports each
// plan's future value in today's money using that country's inflation rate.
func (s *PlanningService) BuildPlans(ctx context.Context, req models.PlanRequest) (models.PlanSet, error) {
	set, err := projection.BuildInvestmentPlans(projection.PlanInput{
		TargetAmount:    req.TargetAmount,
		CurrentSavings:  req.CurrentSavings,
		MonthlyIncome:   req.MonthlyIncome,
		MonthlyExpenses: req.MonthlyExpenses,
		Years:           req.Years,
	})
	if err != nil {
		return models.PlanSet{}, err
	}
	if req.Country == "" || s.data == nil {
		return set, nil
	}

	rec, err := s.data.GetInflationRate(ctx, req.Country)
	if err != nil {
		return models.PlanSet{}, err
	}
	projection.ApplyInflation(&set, rec)
	s.log.Debug("plans adjusted for inflation",
		applogger.String("country", rec.Country),
		applogger.Float64("inflation", rec.Rate),
		applogger.String("origin", string(rec.Origin)))
	return set, nil
}

// RealisticTimeline solves for the years needed at a safe share of the saving capacity.
func (s *PlanningService) RealisticTimeline(_ context.Context, req models.TimelineRequest) (models.RealisticTimelineResult, error) {
	var opts []projection.TimelineOption
	if req.Utilization > 0 {
		opts = append(opts, projection.WithUtilization(req.Utilization))
	}
	if req.AnnualReturn != nil {
		opts = append(opts, projection.WithAnnualReturn(*req.AnnualReturn))
	}
	return projection.SolveRealisticTimeline(req.TargetAmount, req.CurrentSavings, req.MaxMonthlyCapacity, opts...)
}
