package deliveryrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery run with all of its legs.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, legDTOs := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&legDTOs).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery run. Legs are updated individually via
// UpdateLeg; only the run row is written here.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, _ := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery run by ID, including its legs.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	var legDTOs []LegDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&legDTOs, "delivery_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, legDTOs)
}

// GetLegs retrieves the legs with the given identifiers. Missing legs are
// omitted rather than reported.
func (r *GormDeliveryRepository) GetLegs(ctx context.Context, legIDs []kernel.UUID) ([]*delivery.Leg, error) {
	ids := make([]uuid.UUID, 0, len(legIDs))
	for _, id := range legIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, id.Bytes())
	}

	var legDTOs []LegDTO
	if err := r.db.WithContext(ctx).Find(&legDTOs, "id IN ?", ids).Error; err != nil {
		return nil, err
	}

	legs := make([]*delivery.Leg, 0, len(legDTOs))
	for _, legDTO := range legDTOs {
		leg, err := legToDomain(legDTO)
		if err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}

	return legs, nil
}

// UpdateLeg persists changes to a single leg.
func (r *GormDeliveryRepository) UpdateLeg(ctx context.Context, leg *delivery.Leg) error {
	if err := leg.Validate(); err != nil {
		return err
	}

	updates := map[string]any{
		"sender_lat":   nil,
		"sender_lng":   nil,
		"receiver_lat": nil,
		"receiver_lng": nil,
	}
	if p := leg.SenderPoint(); p != nil {
		updates["sender_lat"] = p.Latitude()
		updates["sender_lng"] = p.Longitude()
	}
	if p := leg.ReceiverPoint(); p != nil {
		updates["receiver_lat"] = p.Latitude()
		updates["receiver_lng"] = p.Longitude()
	}

	result := r.db.WithContext(ctx).
		Model(&LegDTO{}).
		Where("id = ?", leg.ID().Bytes()).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
