package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"courseplatform/services/management-service/internal/domain"
)

// GORM Модель
type CourseGorm struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null;size:200"`
	Description string    `gorm:"not null"`
	Price       int       `gorm:"not null;default:0"`
	OperatorID  uuid.UUID `gorm:"type:uuid;not null;index"`

	// При удалении курса его расписания уходят каскадом на уровне БД.
	Schedules []ScheduleGorm `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CourseGorm) TableName() string {
	return "course"
}

func toGormCourse(c *domain.Course) *CourseGorm {
	return &CourseGorm{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		OperatorID:  c.OperatorID,
	}
}

func toDomainCourse(g *CourseGorm) *domain.Course {
	return &domain.Course{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Price:       g.Price,
		OperatorID:  g.OperatorID,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// courseTx — единица работы: проверка имени и вставка курса в одной транзакции.
type courseTx struct {
	tx *gorm.DB
}

func (r *CourseRepository) Begin(ctx context.Context) (domain.CourseTx, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &courseTx{tx: tx}, nil
}

func (t *courseTx) ExistsByName(name string) (bool, error) {
	var count int64
	err := t.tx.Model(&CourseGorm{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (t *courseTx) Insert(course *domain.Course) error {
	g := toGormCourse(course)
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	if err := t.tx.Create(g).Error; err != nil {
		// Уникальный индекс по имени — последний рубеж против гонки двух создателей.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateCourse
		}
		return err
	}

	course.ID = g.ID
	course.CreatedAt = g.CreatedAt
	course.UpdatedAt = g.UpdatedAt
	return nil
}

func (t *courseTx) Commit() error {
	return t.tx.Commit().Error
}

func (t *courseTx) Rollback() error {
	return t.tx.Rollback().Error
}

func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	var g CourseGorm
	err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}
	return toDomainCourse(&g), nil
}

// ListUpcoming возвращает курсы, у которых ещё есть расписания в будущем.
func (r *CourseRepository) ListUpcoming(ctx context.Context) ([]domain.Course, error) {
	var rows []CourseGorm
	today := time.Now().Format("2006-01-02")

	err := r.db.WithContext(ctx).
		Distinct("course.*").
		Joins("JOIN schedule_course ON schedule_course.course_id = course.id").
		Where("schedule_course.start_date > ?", today).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	courses := make([]domain.Course, 0, len(rows))
	for i := range rows {
		courses = append(courses, *toDomainCourse(&rows[i]))
	}
	return courses, nil
}

func (r *CourseRepository) ListByOperator(ctx context.Context, operatorID uuid.UUID) ([]domain.Course, error) {
	var rows []CourseGorm
	err := r.db.WithContext(ctx).Where("operator_id = ?", operatorID).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	courses := make([]domain.Course, 0, len(rows))
	for i := range rows {
		courses = append(courses, *toDomainCourse(&rows[i]))
	}
	return courses, nil
}

func (r *CourseRepository) Update(ctx context.Context, id uuid.UUID, upd domain.CourseUpdate) error {
	values := map[string]any{}
	if upd.Name != nil {
		values["name"] = *upd.Name
	}
	if upd.Description != nil {
		values["description"] = *upd.Description
	}
	if upd.Price != nil {
		values["price"] = *upd.Price
	}
	if len(values) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&CourseGorm{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateCourse
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&CourseGorm{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}
