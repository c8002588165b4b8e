package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
	"github.com/andrescamacho/greenhouse-go/internal/domain/greenhouse"
	"github.com/andrescamacho/greenhouse-go/internal/domain/shared"
)

// GormRunRepository implements simulation.RunRepository using GORM
type GormRunRepository struct {
	db *gorm.DB
}

// NewGormRunRepository creates a new GORM run repository
func NewGormRunRepository(db *gorm.DB) *GormRunRepository {
	return &GormRunRepository{db: db}
}

// Save persists a run with its daily summaries and orders in one transaction
func (r *GormRunRepository) Save(ctx context.Context, run *simulation.RunRecord) error {
	if run == nil || run.ID == "" {
		return shared.NewValidationError("run", "a run needs an ID")
	}
	model := runToModel(run)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.ID, err)
	}
	return nil
}

// FindByID loads one run with its days in order
func (r *GormRunRepository) FindByID(ctx context.Context, id string) (*simulation.RunRecord, error) {
	var model RunModel
	result := r.withDetails(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&model)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("run", id)
		}
		return nil, fmt.Errorf("failed to find run: %w", result.Error)
	}

	return modelToRun(&model), nil
}

// ListRecent returns up to limit runs, newest first
func (r *GormRunRepository) ListRecent(ctx context.Context, limit int) ([]*simulation.RunRecord, error) {
	query := r.withDetails(r.db.WithContext(ctx)).Order("started_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []RunModel
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	runs := make([]*simulation.RunRecord, 0, len(models))
	for i := range models {
		runs = append(runs, modelToRun(&models[i]))
	}
	return runs, nil
}

func (r *GormRunRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("day ASC") }).
		Preload("Orders", func(db *gorm.DB) *gorm.DB { return db.Order("day ASC, id ASC") })
}

func runToModel(run *simulation.RunRecord) *RunModel {
	model := &RunModel{
		ID:             run.ID,
		GreenhouseName: run.GreenhouseName,
		Seed:           int64(run.Seed),
		StartedAt:      run.StartedAt,
		FinishedAt:     run.FinishedAt,
		DaysPlayed:     len(run.Days),
		RevenueCents:   int64(run.Revenue()),
	}

	for _, d := range run.Days {
		model.OrdersCompleted += d.OrdersCompleted
		model.Days = append(model.Days, DaySummaryModel{
			RunID:            run.ID,
			Day:              d.Day,
			Date:             d.Date,
			BusinessLevel:    string(d.BusinessLevel),
			Customers:        d.Customers,
			OrdersCompleted:  d.OrdersCompleted,
			OrdersFailed:     d.OrdersFailed,
			QueriesAnswered:  d.QueriesAnswered,
			Complaints:       d.Complaints,
			Escalations:      d.Escalations,
			MaintenanceTasks: d.MaintenanceTasks,
			Watered:          d.Watered,
			Moved:            d.Moved,
			PlantsPlanted:    d.PlantsPlanted,
			Unhandled:        d.Unhandled,
			Matured:          d.Matured,
			Died:             d.Died,
			Pruned:           d.Pruned,
			RevenueCents:     int64(d.Revenue),
			PlantsTotal:      d.Census.Total,
			PlantsSeedling:   d.Census.Seedling,
			PlantsMature:     d.Census.Mature,
			PlantsDead:       d.Census.Dead,
		})
	}

	for _, o := range run.Orders {
		model.Orders = append(model.Orders, OrderRecordModel{
			RunID:      run.ID,
			OrderID:    o.OrderID,
			Day:        o.Day,
			Customer:   o.Customer,
			Cashier:    o.Cashier,
			Status:     o.Status,
			Plants:     o.Plants,
			TotalCents: int64(o.Total),
			Reason:     o.Reason,
		})
	}
	return model
}

// modelToRun rebuilds a run record. Per-species census detail is not stored.
func modelToRun(model *RunModel) *simulation.RunRecord {
	run := &simulation.RunRecord{
		ID:             model.ID,
		GreenhouseName: model.GreenhouseName,
		Seed:           uint64(model.Seed),
		StartedAt:      model.StartedAt,
		FinishedAt:     model.FinishedAt,
	}

	for _, d := range model.Days {
		run.Days = append(run.Days, simulation.DaySummary{
			Day:              d.Day,
			Date:             d.Date,
			BusinessLevel:    simulation.BusinessLevel(d.BusinessLevel),
			Customers:        d.Customers,
			OrdersCompleted:  d.OrdersCompleted,
			OrdersFailed:     d.OrdersFailed,
			QueriesAnswered:  d.QueriesAnswered,
			Complaints:       d.Complaints,
			Escalations:      d.Escalations,
			MaintenanceTasks: d.MaintenanceTasks,
			Watered:          d.Watered,
			Moved:            d.Moved,
			PlantsPlanted:    d.PlantsPlanted,
			Unhandled:        d.Unhandled,
			Matured:          d.Matured,
			Died:             d.Died,
			Pruned:           d.Pruned,
			Revenue:          shared.Money(d.RevenueCents),
			Census: greenhouse.Census{
				Total:    d.PlantsTotal,
				Seedling: d.PlantsSeedling,
				Mature:   d.PlantsMature,
				Dead:     d.PlantsDead,
			},
		})
	}

	for _, o := range model.Orders {
		run.Orders = append(run.Orders, simulation.OrderRecord{
			OrderID:  o.OrderID,
			Day:      o.Day,
			Customer: o.Customer,
			Cashier:  o.Cashier,
			Status:   o.Status,
			Plants:   o.Plants,
			Total:    shared.Money(o.TotalCents),
			Reason:   o.Reason,
		})
	}
	return run
}
