package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/salesdesk/leads-service/internal/core/domain"
	"github.com/salesdesk/leads-service/internal/core/ports"
)

const tableLeads = "leads"

// leadRow is the persisted shape of a lead.
type leadRow struct {
	ID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Source    string    `gorm:"type:varchar(100);not null"`
	Owner     string    `gorm:"type:varchar(50);not null"`
	Stage     string    `gorm:"type:varchar(50);not null;default:'New Lead'"`
	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (leadRow) TableName() string { return tableLeads }

func toRow(l *domain.Lead) leadRow {
	return leadRow{
		ID:        l.ID,
		Name:      l.Name,
		Source:    string(l.Source),
		Owner:     l.Owner,
		Stage:     string(l.Stage),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func (r leadRow) toDomain() domain.Lead {
	return domain.Lead{
		ID:        r.ID,
		Name:      r.Name,
		Source:    domain.Source(r.Source),
		Owner:     r.Owner,
		Stage:     domain.Stage(r.Stage),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type LeadRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Migrate creates or extends the leads table.
func (r *LeadRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&leadRow{}); err != nil {
		return fmt.Errorf("migrate leads: %w", err)
	}
	return nil
}

// filterScope applies the optional list conditions. Search and Count share it
// so that the page and the total always describe the same rows.
func filterScope(f ports.LeadFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Query != "" {
			db = db.Where("name ILIKE ?", "%"+escapeLike(f.Query)+"%")
		}
		if f.Source != "" {
			db = db.Where("source = ?", f.Source)
		}
		if f.Owner != "" {
			db = db.Where("owner = ?", f.Owner)
		}
		return db
	}
}

// escapeLike neutralises LIKE wildcards so the query matches literally.
// Backslash is the default ESCAPE character in PostgreSQL.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *LeadRepository) searchQuery(ctx context.Context, f ports.LeadFilter, offset, limit int) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&leadRow{}).
		Scopes(filterScope(f)).
		Order("created_at ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit)
}

// Search returns one page of leads matching f, oldest first.
func (r *LeadRepository) Search(ctx context.Context, f ports.LeadFilter, offset, limit int) ([]domain.Lead, error) {
	var rows []leadRow
	if err := r.searchQuery(ctx, f, offset, limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("search leads: %w", err)
	}

	leads := make([]domain.Lead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, row.toDomain())
	}
	return leads, nil
}

// Count returns the number of leads matching f.
func (r *LeadRepository) Count(ctx context.Context, f ports.LeadFilter) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&leadRow{}).Scopes(filterScope(f)).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return n, nil
}

// Insert assigns an id and timestamps and writes the lead.
func (r *LeadRepository) Insert(ctx context.Context, lead *domain.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	now := r.now()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	row := toRow(lead)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	*lead = row.toDomain()
	return nil
}

// FindByID returns the lead with the given id. Ids that are not UUIDs cannot
// exist and yield domain.ErrLeadNotFound without a round trip.
func (r *LeadRepository) FindByID(ctx context.Context, id string) (*domain.Lead, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrLeadNotFound
	}

	var row leadRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("find lead: %w", err)
	}
	lead := row.toDomain()
	return &lead, nil
}

func (r *LeadRepository) updateQuery(ctx context.Context, row *leadRow, id string, patch ports.LeadPatch) *gorm.DB {
	values := map[string]interface{}{"updated_at": r.now()}
	if patch.Stage != nil {
		values["stage"] = string(*patch.Stage)
	}
	if patch.Owner != nil {
		values["owner"] = *patch.Owner
	}

	return r.db.WithContext(ctx).
		Model(row).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(values)
}

// UpdateByID applies patch and refreshes updated_at in a single statement,
// returning the stored row.
func (r *LeadRepository) UpdateByID(ctx context.Context, id string, patch ports.LeadPatch) (*domain.Lead, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrLeadNotFound
	}

	var row leadRow
	res := r.updateQuery(ctx, &row, id, patch)
	if res.Error != nil {
		return nil, fmt.Errorf("update lead: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrLeadNotFound
	}
	lead := row.toDomain()
	return &lead, nil
}
