package templates

import (
	"context"
	"fmt"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/apperror"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/tx"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/catalogs/product"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/catalogs/store"
	"github.com/hanjihoon31-beep/erphan-sub000/pkg/logger"
)

// StoreCatalog confirms a store exists before products are registered on it.
type StoreCatalog interface {
	GetByID(ctx context.Context, storeID id.ID) (*store.Store, error)
}

// ProductCatalog confirms products exist before registration.
type ProductCatalog interface {
	GetByID(ctx context.Context, productID id.ID) (*product.Product, error)
	GetByIDs(ctx context.Context, productIDs []id.ID) ([]*product.Product, error)
}

// Service provides business logic for the template registry.
type Service struct {
	repo      Repository
	stores    StoreCatalog
	products  ProductCatalog
	txManager tx.Manager
}

// NewService creates a new template service.
func NewService(repo Repository, stores StoreCatalog, products ProductCatalog, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		stores:    stores,
		products:  products,
		txManager: txManager,
	}
}

// Add registers a single (store, product) entry.
// Fails with NotFound when the store or product is unknown, and with
// DuplicateEntry when the pair is already registered.
func (s *Service) Add(ctx context.Context, storeID, productID id.ID, displayOrder int) (*Entry, error) {
	entry := NewEntry(storeID, productID, displayOrder)

	if err := entry.Validate(ctx); err != nil {
		return nil, err
	}
	if _, err := s.stores.GetByID(ctx, storeID); err != nil {
		return nil, err
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	logger.Info(ctx, "template entry added",
		"entry_id", entry.ID,
		"store_id", storeID,
		"product_id", productID,
	)
	return entry, nil
}

// BulkAdd registers many products for one store in a single call.
// Unknown products fail the whole batch with NotFound; already-registered
// products are skipped silently and the returned count is the number of
// entries actually inserted.
func (s *Service) BulkAdd(ctx context.Context, storeID id.ID, productIDs []id.ID) (int, error) {
	if len(productIDs) == 0 {
		return 0, nil
	}

	if _, err := s.stores.GetByID(ctx, storeID); err != nil {
		return 0, err
	}
	if err := s.checkProductsExist(ctx, productIDs); err != nil {
		return 0, err
	}

	existing, err := s.repo.ExistingProductIDs(ctx, storeID, productIDs)
	if err != nil {
		return 0, fmt.Errorf("check existing entries: %w", err)
	}

	// New entries keep the caller's ordering and continue past the store's
	// current largest display order, so they list after earlier additions.
	base, err := s.repo.NextDisplayOrder(ctx, storeID)
	if err != nil {
		return 0, fmt.Errorf("resolve next display order: %w", err)
	}

	toCreate := make([]*Entry, 0, len(productIDs))
	seen := make(map[id.ID]bool, len(productIDs))
	for _, productID := range productIDs {
		if existing[productID] || seen[productID] {
			continue
		}
		seen[productID] = true
		toCreate = append(toCreate, NewEntry(storeID, productID, base+len(toCreate)))
	}

	if len(toCreate) == 0 {
		return 0, nil
	}

	created := 0
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, entry := range toCreate {
			if err := entry.Validate(ctx); err != nil {
				return err
			}
			if err := s.repo.Create(ctx, entry); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info(ctx, "template entries bulk added",
		"store_id", storeID,
		"requested", len(productIDs),
		"created", created,
	)
	return created, nil
}

// checkProductsExist resolves the batch against the product catalog and
// reports every unknown id at once.
func (s *Service) checkProductsExist(ctx context.Context, productIDs []id.ID) error {
	products, err := s.products.GetByIDs(ctx, productIDs)
	if err != nil {
		return fmt.Errorf("resolve products: %w", err)
	}

	known := make(map[id.ID]bool, len(products))
	for _, p := range products {
		known[p.ID] = true
	}

	var missing []string
	reported := make(map[id.ID]bool, len(productIDs))
	for _, productID := range productIDs {
		if known[productID] || reported[productID] {
			continue
		}
		reported[productID] = true
		missing = append(missing, productID.String())
	}
	if len(missing) > 0 {
		return apperror.NewNotFound("product", missing[0]).
			WithDetail("missingProductIds", missing)
	}
	return nil
}

// ListActive returns a store's active entries ordered for display.
func (s *Service) ListActive(ctx context.Context, storeID id.ID) ([]*Entry, error) {
	return s.repo.ListActive(ctx, storeID)
}

// Deactivate soft-disables an entry. Records already generated from the
// entry are unaffected.
func (s *Service) Deactivate(ctx context.Context, entryID id.ID) error {
	if _, err := s.repo.GetByID(ctx, entryID); err != nil {
		return err
	}
	if err := s.repo.SetActive(ctx, entryID, false); err != nil {
		return err
	}

	logger.Info(ctx, "template entry deactivated", "entry_id", entryID)
	return nil
}
