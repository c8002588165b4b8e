package persistence

import (
	"time"
)

// RunModel represents the simulation_runs table
type RunModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	GreenhouseName  string    `gorm:"column:greenhouse_name;not null"`
	Seed            int64     `gorm:"column:seed;not null"` // uint64 bits stored as int64
	StartedAt       time.Time `gorm:"column:started_at;not null;index"`
	FinishedAt      time.Time `gorm:"column:finished_at;not null"`
	DaysPlayed      int       `gorm:"column:days_played;not null"`
	OrdersCompleted int       `gorm:"column:orders_completed;not null;default:0"`
	RevenueCents    int64     `gorm:"column:revenue_cents;not null;default:0"`

	Days   []DaySummaryModel  `gorm:"foreignKey:RunID;references:ID;constraint:OnDelete:CASCADE"`
	Orders []OrderRecordModel `gorm:"foreignKey:RunID;references:ID;constraint:OnDelete:CASCADE"`
}

func (RunModel) TableName() string {
	return "simulation_runs"
}

// DaySummaryModel represents the run_days table
type DaySummaryModel struct {
	ID               uint      `gorm:"column:id;primaryKey;autoIncrement"`
	RunID            string    `gorm:"column:run_id;not null;uniqueIndex:idx_run_day"`
	Day              int       `gorm:"column:day;not null;uniqueIndex:idx_run_day"`
	Date             time.Time `gorm:"column:date;not null"`
	BusinessLevel    string    `gorm:"column:business_level;not null"`
	Customers        int       `gorm:"column:customers"`
	OrdersCompleted  int       `gorm:"column:orders_completed"`
	OrdersFailed     int       `gorm:"column:orders_failed"`
	QueriesAnswered  int       `gorm:"column:queries_answered"`
	Complaints       int       `gorm:"column:complaints"`
	Escalations      int       `gorm:"column:escalations"`
	MaintenanceTasks int       `gorm:"column:maintenance_tasks"`
	Watered          int       `gorm:"column:watered"`
	Moved            int       `gorm:"column:moved"`
	PlantsPlanted    int       `gorm:"column:plants_planted"`
	Unhandled        int       `gorm:"column:unhandled"`
	Matured          int       `gorm:"column:matured"`
	Died             int       `gorm:"column:died"`
	Pruned           int       `gorm:"column:pruned"`
	RevenueCents     int64     `gorm:"column:revenue_cents"`
	PlantsTotal      int       `gorm:"column:plants_total"`
	PlantsSeedling   int       `gorm:"column:plants_seedling"`
	PlantsMature     int       `gorm:"column:plants_mature"`
	PlantsDead       int       `gorm:"column:plants_dead"`
}

func (DaySummaryModel) TableName() string {
	return "run_days"
}

// OrderRecordModel represents the run_orders table
type OrderRecordModel struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement"`
	RunID      string `gorm:"column:run_id;not null;index"`
	OrderID    string `gorm:"column:order_id;not null"`
	Day        int    `gorm:"column:day;not null"`
	Customer   string `gorm:"column:customer;not null"`
	Cashier    string `gorm:"column:cashier"`
	Status     string `gorm:"column:status;not null"`
	Plants     int    `gorm:"column:plants"`
	TotalCents int64  `gorm:"column:total_cents"`
	Reason     string `gorm:"column:reason;type:text"`
}

func (OrderRecordModel) TableName() string {
	return "run_orders"
}
