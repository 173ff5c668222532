package gormdb

import (
	"context"
	"time"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// deviceRepository implements the repository.DeviceRepository interface.
// Soft-delete visibility comes from model.DeviceModel.DeletedAt.
type deviceRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db, now: db.NowFunc}
}

// List counts the filtered set before ordering, then fetches one page of it.
func (repo *deviceRepository) List(ctx context.Context, ownerID uuid.UUID, query entity.DeviceQuery) (*entity.DevicePage, error) {
	base := applyDeviceFilter(
		repo.db.WithContext(ctx).Model(&model.DeviceModel{}).Where("user_id = ?", ownerID),
		query.Filter,
	)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count devices")
	}

	meta := entity.NewPageMeta(query.NormalizedPage(), total)
	if query.PastEnd(total) {
		return &entity.DevicePage{Items: []*entity.Device{}, Meta: meta}, nil
	}

	page := base.Session(&gorm.Session{})
	if query.Sort.Field != "" {
		desc := query.Sort.Direction != entity.SortAsc
		// ids are UUIDv7, so the tiebreak keeps insertion order within equal keys.
		page = page.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Name: query.Sort.Field}, Desc: desc},
			{Column: clause.Column{Name: "id"}, Desc: desc},
		}})
	}

	var deviceModels []*model.DeviceModel
	if err := page.
		Offset(query.Offset()).
		Limit(entity.DevicePageSize).
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	items := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		items = append(items, toDeviceDomain(deviceM))
	}

	return &entity.DevicePage{Items: items, Meta: meta}, nil
}

func applyDeviceFilter(db *gorm.DB, filter entity.DeviceFilter) *gorm.DB {
	if filter.InUse != nil {
		db = db.Where("in_use = ?", *filter.InUse)
	}
	if filter.Location != nil {
		db = db.Where("location LIKE ?", "%"+*filter.Location+"%")
	}
	if filter.PurchaseDateStart != nil {
		db = db.Where("purchase_date >= ?", toModelDate(*filter.PurchaseDateStart))
	}
	if filter.PurchaseDateEnd != nil {
		db = db.Where("purchase_date <= ?", toModelDate(*filter.PurchaseDateEnd))
	}

	return db
}

// Create persists a new device and fills in the generated ID and timestamps.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

func (repo *deviceRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Device, error) {
	return repo.find(repo.db.WithContext(ctx), ownerID, id)
}

// Update writes only the patched columns in one owner-scoped statement.
func (repo *deviceRepository) Update(ctx context.Context, ownerID, id uuid.UUID, patch entity.DevicePatch) (*entity.Device, error) {
	updates := map[string]any{"updated_at": repo.now()}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}
	if patch.PurchaseDate != nil {
		updates["purchase_date"] = toModelDate(*patch.PurchaseDate)
	}
	if patch.InUse != nil {
		updates["in_use"] = *patch.InUse
	}

	if err := repo.mutate(ctx, ownerID, id, updates, "failed to update device"); err != nil {
		return nil, err
	}

	return repo.reload(ctx, ownerID, id)
}

// ToggleInUse negates the stored flag in SQL so concurrent toggles never lose a flip.
func (repo *deviceRepository) ToggleInUse(ctx context.Context, ownerID, id uuid.UUID) (*entity.Device, error) {
	updates := map[string]any{
		"in_use":     gorm.Expr("NOT in_use"),
		"updated_at": repo.now(),
	}

	if err := repo.mutate(ctx, ownerID, id, updates, "failed to toggle device"); err != nil {
		return nil, err
	}

	return repo.reload(ctx, ownerID, id)
}

// SoftDelete stamps deleted_at and updated_at together.
func (repo *deviceRepository) SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error {
	now := repo.now()

	return repo.mutate(ctx, ownerID, id, map[string]any{
		"deleted_at": now,
		"updated_at": now,
	}, "failed to delete device")
}

func (repo *deviceRepository) mutate(ctx context.Context, ownerID, id uuid.UUID, updates map[string]any, msg string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, msg)
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// reload reads from the primary so a replica never returns the pre-write row.
func (repo *deviceRepository) reload(ctx context.Context, ownerID, id uuid.UUID) (*entity.Device, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(dbresolver.Write), ownerID, id)
}

func (repo *deviceRepository) find(db *gorm.DB, ownerID, id uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := db.
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	return toDeviceDomain(&deviceM), nil
}

// --- Mapper Functions ---

func toModelDate(d entity.Date) model.Date {
	return model.NewDate(d.Time())
}

func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		Location:     data.Location,
		PurchaseDate: entity.NewDate(data.PurchaseDate.Time),
		InUse:        data.InUse,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		Location:     data.Location,
		PurchaseDate: toModelDate(data.PurchaseDate),
		InUse:        data.InUse,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
