package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"inkwell/contexts/publishing/post-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/post-service/domain/errors"
	"inkwell/contexts/publishing/post-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) List(ctx context.Context, query ports.ListQuery) ([]entities.Post, error) {
	tx := r.db.WithContext(ctx).Model(&postModel{})
	if query.Published != nil {
		tx = tx.Where("published = ?", *query.Published)
	}

	var rows []postModel
	if err := tx.Limit(query.Limit).Offset(query.Skip).Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Post, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) Create(ctx context.Context, input ports.CreatePostInput) (int64, error) {
	row := postModel{
		Title:       input.Title,
		Content:     input.Content,
		Published:   input.Published,
		PublishedAt: utcOrNil(input.PublishedAt),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, domainerrors.ErrInvalidRequest
		}
		return 0, err
	}
	return row.ID, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (entities.Post, error) {
	var row postModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Post{}, domainerrors.ErrPostNotFound
		}
		return entities.Post{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) Update(ctx context.Context, id int64, input ports.UpdatePostInput) error {
	changes := map[string]any{}
	if input.Title != nil {
		changes["title"] = *input.Title
	}
	if input.Content != nil {
		changes["content"] = *input.Content
	}
	if input.Published != nil {
		changes["published"] = *input.Published
	}
	if input.PublishedAt != nil {
		changes["published_at"] = input.PublishedAt.UTC()
	}
	if len(changes) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&postModel{}).
		Where("id = ?", id).
		Updates(changes).
		Error
}

func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&postModel{}).
		Error
}

func (r *Repository) CountByID(ctx context.Context, id int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&postModel{}).
		Where("id = ?", id).
		Count(&total).
		Error
	return total, err
}

func (r *Repository) PublishDue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&postModel{}).
		Where("published = ? AND published_at IS NOT NULL AND published_at <= ?", false, now.UTC()).
		Update("published", true)
	return result.RowsAffected, result.Error
}

type postModel struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string     `gorm:"column:title"`
	Content     string     `gorm:"column:content"`
	Published   bool       `gorm:"column:published"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (postModel) TableName() string {
	return "posts"
}

func (m postModel) toEntity() entities.Post {
	return entities.Post{
		ID:          m.ID,
		Title:       m.Title,
		Content:     m.Content,
		Published:   m.Published,
		PublishedAt: utcOrNil(m.PublishedAt),
	}
}

func utcOrNil(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	utc := value.UTC()
	return &utc
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
