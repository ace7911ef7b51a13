package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/nimbushr/catalog/internal/domain"
	"github.com/nimbushr/catalog/internal/mocks"
	"github.com/nimbushr/catalog/internal/model"
	"github.com/nimbushr/catalog/internal/repository"
	"github.com/nimbushr/catalog/internal/service"
)

func newService(repo repository.CatalogRepositoryIface, directory repository.UserDirectoryIface, audit repository.CatalogAuditLogRepositoryIface) *service.CatalogService {
	return service.NewCatalogService(repo, directory, audit, nil, nil)
}

func catalogOf(configType model.ConfigType, items ...model.CatalogItem) *model.ConfigCatalog {
	return &model.ConfigCatalog{
		ID:         uuid.New(),
		ConfigType: configType,
		Items:      items,
	}
}

func activeItem(name string, order int) model.CatalogItem {
	return model.CatalogItem{
		ID:        uuid.New(),
		Name:      name,
		Color:     model.DefaultItemColor,
		IsActive:  true,
		SortOrder: order,
	}
}

func TestGetByTypeSeedsFreshScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCatalogRepositoryIface(ctrl)
	audit := mocks.NewMockCatalogAuditLogRepositoryIface(ctrl)

	seeded := make(map[model.ConfigType]*model.ConfigCatalog)

	gomock.InOrder(
		repo.EXPECT().
			FindByTypeAndScope(gomock.Any(), model.ConfigDepartments, nil).
			Return(nil, domain.ErrCatalogNotFound),

		repo.EXPECT().
			CreateIfAbsent(gomock.Any(), gomock.Any()).
			Times(5).
			DoAndReturn(func(_ context.Context, cat *model.ConfigCatalog) (bool, error) {
				seeded[cat.ConfigType] = cat
				return true, nil
			}),

		repo.EXPECT().
			FindByTypeAndScope(gomock.Any(), model.ConfigDepartments, nil).
			DoAndReturn(func(_ context.Context, ct model.ConfigType, _ *uuid.UUID) (*model.ConfigCatalog, error) {
				return seeded[ct], nil
			}),
	)

	// one audit entry per seeded catalog
	audit.EXPECT().Create(gomock.Any(), gomock.Any()).Times(5).Return(nil)

	svc := newService(repo, nil, audit)

	view, err := svc.GetByType(context.Background(), "departments", nil)
	assert.NoError(t, err)

	names := make([]string, 0, len(view.Items))
	for _, it := range view.Items {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{
		"Engineering", "Human Resources", "Sales", "Marketing",
		"Finance", "Operations", "Support", "Administration",
	}, names)

	// types without default content seed empty
	assert.Empty(t, seeded[model.ConfigSkills].Items)
	assert.Empty(t, seeded[model.ConfigPositions].Items)
	assert.Empty(t, seeded[model.ConfigBenefits].Items)
}

func TestGetByTypeRejectsUnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(mocks.NewMockCatalogRepositoryIface(ctrl), nil, nil)

	_, err := svc.GetByType(context.Background(), "holidays", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidConfigType)
}

func TestGetAllIncludesEmptyTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCatalogRepositoryIface(ctrl)
	repo.EXPECT().
		FindAllByScope(gomock.Any(), nil).
		Return([]*model.ConfigCatalog{
			catalogOf(model.ConfigDepartments, activeItem("Engineering", 0)),
		}, nil)

	svc := newService(repo, nil, nil)

	views, err := svc.GetAll(context.Background(), nil)
	assert.NoError(t, err)
	assert.Len(t, views, 5)
	assert.Len(t, views[model.ConfigDepartments].Items, 1)
	assert.Empty(t, views[model.ConfigSkills].Items)
	assert.Empty(t, views[model.ConfigBenefits].Items)
}

func TestAddItemRejectsDuplicateNameCaseInsensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCatalogRepositoryIface(ctrl)
	repo.EXPECT().
		FindByTypeAndScope(gomock.Any(), model.ConfigDepartments, nil).
		Return(catalogOf(model.ConfigDepartments, activeItem("Engineering", 0)), nil).
		Times(2)

	svc := newService(repo, nil, nil)

	_, err := svc.AddItem(context.Background(), service.AddItemInput{
		ConfigType: "departments",
		Name:       "Engineering",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateItemName)

	_, err = svc.AddItem(context.Background(), service.AddItemInput{
		ConfigType: "departments",
		Name:       "  engineering  ",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateItemName)
}

func TestAddItemAllowsReuseOfInactiveName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	retired := activeItem("Engineering", 0)
	retired.IsActive = false
	cat := catalogOf(model.ConfigDepartments, retired)

	repo := mocks.NewMockCatalogRepositoryIface(ctrl)
	repo.EXPECT().
		FindByTypeAndScope(gomock.Any(), model.ConfigDepartments, nil).
		Return(cat, nil).
		Times(2)
	repo.EXPECT().
		AddItem(gomock.Any(), cat.ID, gomock.Any(), gomock.Any()).
		Return(nil)

	svc := newService(repo, nil, nil)

	_, err := svc.AddItem(context.Background(), service.AddItemInput{
		ConfigType: "departments",
		Name:       "Engineering",
	})
	assert.NoError(t, err)
}

func TestAddItemAppendsAtEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actorID := uuid.New()
	cat := catalogOf(model.ConfigRoles, activeItem("Admin", 0), activeItem("HR", 1))

	repo := mocks.NewMockCatalogRepositoryIface(ctrl)
	audit := mocks.NewMockCatalogAuditLogRepositoryIface(ctrl)

	var added *model.CatalogItem

	gomock.InOrder(
		repo.EXPECT().
			FindByTypeAndScope(gomock.Any(), model.ConfigRoles, nil).
			Return(cat, nil),

		repo.EXPECT().
			AddItem(gomock.Any(), cat.ID, gomock.Any(), &actorID).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, item *model.CatalogItem, _ *uuid.UUID) error {
				added = item
				cat.Items = append(cat.Items, *item)
				return nil
			}),

		repo.EXPECT().
			FindByTypeAndScope(gomock.Any(), model.ConfigRoles, nil).
			Return(cat, nil),
	)

	audit.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *model.CatalogAuditLog) error {
			assert.Equal(t, model.ActionItemAdd, entry.Action)
			assert.Equal(t, "Contractor", entry.ItemName)
			return nil
		})

	svc := newService(repo, nil, audit)

	view, err := svc.AddItem(context.Background(), service.AddItemInput{
		ConfigType:  "roles",
		Name:        "Contractor",
		Description: "External contract staff",
		ActorID:     &actorID,
	})
	assert.NoError(t, err)
	assert.NotNil(t, added)
	assert.Equal(t, 2, added.SortOrder)
	assert.True(t, added.IsActive)
	assert.Equal(t, model.DefaultItemColor, added.Color)
	assert.Equal(t, &actorID, added.CreatedByID)

	assert.Len(t, view.Items, 3)
	assert.Equal(t, "Contractor", view.Items[2].Name)
	assert.Equal(t, 2, view.Items[2].Order)
}

func TestAddItemRejectsBlankName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newService(mocks.NewMockCatalogRepositoryIface(ctrl), nil, nil)

	_, err := svc.AddItem(context.Background(), service.AddItemInput{
		ConfigType: "departments",
		Name:       "   ",
	})
	assert.ErrorIs(t, err, domain.ErrEmptyItemName)
}

func TestUpdateItemPartialPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	item := activeItem("Engineering", 0)
	item.Description = "Software development"
	cat := catalogOf(model.ConfigDepartments, item)

	repo := mocks.NewMockCatalogRepositoryIface(ctrl)
	repo.EXPECT().
		FindByTypeAndScope(gomock.Any(), model.ConfigDepartments, nil).
		Return(cat, nil).
		Times(2)
	repo.EXPECT().
		SaveItem(gomock.Any(), cat.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, saved *model.CatalogItem, _ *uuid.UUID) error {
			assert.Equal(t, "Engineering", saved.Name)
			assert.Equal(t, "Software development", saved.Description)
			assert.Equal(t, "#000000", saved.Color)
			return nil
		})

	svc := newService(repo, nil, nil)

	color := "#000000"
	view, err := svc.UpdateItem(context.Background(), "departments", nil, item.ID, service.ItemPatch{
		Color: &color,
	}, nil)
	assert.NoError(t, err)
	assert.Equal(t, "#000000", view.Items[0].Color)
	assert.Equal(t, "Software development", view.Items[0].Description)
}

func TestUpdateItemRejectsRenameToExistingName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng := activeItem("Engineering", 0)
	sales := activeItem("Sales", 1)
	cat := catalogOf(model.ConfigDepartments, eng, sales)

	repo := mocks.NewMockCatalogRepositoryIface(ctrl)
	repo.EXPECT().
		FindByTypeAndScope(gomock.Any(), model.ConfigDepartments, nil).
		Return(cat, nil)

	svc := newService(repo, nil, nil)

	name := "engineering"
	_, err := svc.UpdateItem(context.Background(), "departments", nil, sales.ID, service.ItemPatch{
		Name: &name,
	}, nil)
	assert.ErrorIs(t, err, domain.ErrDuplicateItemName)
}

func TestUpdateItemUnknownID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCatalogRepositoryIface(ctrl)
	repo.EXPECT().
		FindByTypeAndScope(gomock.Any(), model.ConfigDepartments, nil).
		Return(catalogOf(model.ConfigDepartments), nil)

	svc := newService(repo, nil, nil)

	_, err := svc.UpdateItem(context.Background(), "departments", nil, uuid.New(), service.ItemPatch{}, nil)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestRemoveItemBlockedWhileInUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng := activeItem("Engineering", 0)
	cat := catalogOf(model.ConfigDepartments, eng)

	repo := mocks.NewMockCatalogRepositoryIface(ctrl)
	directory := mocks.NewMockUserDirectoryIface(ctrl)

	repo.EXPECT().
		FindByTypeAndScope(gomock.Any(), model.ConfigDepartments, nil).
		Return(cat, nil)
	directory.EXPECT().
		CountActiveByField(gomock.Any(), repository.DirectoryFieldDepartment, "Engineering").
		Return(int64(3), nil)

	svc := newService(repo, directory, nil)

	_, err := svc.RemoveItem(context.Background(), "departments", nil, eng.ID, nil)
	assert.ErrorIs(t, err, domain.ErrItemInUse)

	var inUse *domain.ItemInUseError
	assert.ErrorAs(t, err, &inUse)
	assert.Equal(t, int64(3), inUse.UsageCount)
	assert.Equal(t, "Engineering", inUse.ItemName)
}

func TestRemoveItemSucceedsWhenUnused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	contractor := activeItem("Contractor", 0)
	cat := catalogOf(model.ConfigRoles, contractor)

	repo := mocks.NewMockCatalogRepositoryIface(ctrl)
	directory := mocks.NewMockUserDirectoryIface(ctrl)

	gomock.InOrder(
		repo.EXPECT().
			FindByTypeAndScope(gomock.Any(), model.ConfigRoles, nil).
			Return(cat, nil),

		directory.EXPECT().
			CountActiveByField(gomock.Any(), repository.DirectoryFieldRole, "Contractor").
			Return(int64(0), nil),

		repo.EXPECT().
			DeleteItem(gomock.Any(), cat.ID, contractor.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ uuid.UUID, _ *uuid.UUID) error {
				cat.Items = nil
				return nil
			}),

		repo.EXPECT().
			FindByTypeAndScope(gomock.Any(), model.ConfigRoles, nil).
			Return(cat, nil),
	)

	svc := newService(repo, directory, nil)

	view, err := svc.RemoveItem(context.Background(), "roles", nil, contractor.ID, nil)
	assert.NoError(t, err)
	assert.Empty(t, view.Items)
}

func TestRemoveItemSkipsGuardForUntrackedTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sk := activeItem("Go", 0)
	cat := catalogOf(model.ConfigSkills, sk)

	repo := mocks.NewMockCatalogRepositoryIface(ctrl)
	// the directory mock gets no expectations: skills are deleted unguarded
	directory := mocks.NewMockUserDirectoryIface(ctrl)

	repo.EXPECT().
		FindByTypeAndScope(gomock.Any(), model.ConfigSkills, nil).
		Return(cat, nil).
		Times(2)
	repo.EXPECT().
		DeleteItem(gomock.Any(), cat.ID, sk.ID, gomock.Any()).
		Return(nil)

	svc := newService(repo, directory, nil)

	_, err := svc.RemoveItem(context.Background(), "skills", nil, sk.ID, nil)
	assert.NoError(t, err)
}

func TestReorderItemsAssignsByPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := activeItem("Engineering", 0)
	b := activeItem("Sales", 1)
	cat := catalogOf(model.ConfigDepartments, a, b)

	repo := mocks.NewMockCatalogRepositoryIface(ctrl)
	repo.EXPECT().
		FindByTypeAndScope(gomock.Any(), model.ConfigDepartments, nil).
		Return(cat, nil).
		Times(2)
	repo.EXPECT().
		UpdateItemOrders(gomock.Any(), cat.ID, map[uuid.UUID]int{b.ID: 0, a.ID: 1}, gomock.Any()).
		Return(nil)

	svc := newService(repo, nil, nil)

	_, err := svc.ReorderItems(context.Background(), "departments", nil, []uuid.UUID{b.ID, a.ID}, nil)
	assert.NoError(t, err)
}

func TestReorderItemsLenientAboutOmissionsAndStrangers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := activeItem("Engineering", 0)
	b := activeItem("Sales", 1)
	cat := catalogOf(model.ConfigDepartments, a, b)

	repo := mocks.NewMockCatalogRepositoryIface(ctrl)
	repo.EXPECT().
		FindByTypeAndScope(gomock.Any(), model.ConfigDepartments, nil).
		Return(cat, nil).
		Times(2)
	// only b is listed; the unknown id is dropped, a keeps its order
	repo.EXPECT().
		UpdateItemOrders(gomock.Any(), cat.ID, map[uuid.UUID]int{b.ID: 0}, gomock.Any()).
		Return(nil)

	svc := newService(repo, nil, nil)

	_, err := svc.ReorderItems(context.Background(), "departments", nil, []uuid.UUID{b.ID, uuid.New()}, nil)
	assert.NoError(t, err)
}

func TestEnsureDefaultsIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCatalogRepositoryIface(ctrl)
	audit := mocks.NewMockCatalogAuditLogRepositoryIface(ctrl)

	// every catalog already exists, so nothing is audited
	repo.EXPECT().
		CreateIfAbsent(gomock.Any(), gomock.Any()).
		Times(5).
		Return(false, nil)

	svc := newService(repo, nil, audit)

	assert.NoError(t, svc.EnsureDefaults(context.Background(), nil))
}

func TestGetByTypeServesRepeatReadsFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCatalogRepositoryIface(ctrl)
	cacheService := service.NewCacheService(service.CacheConfig{TTL: time.Minute, CleanupFreq: time.Minute})
	defer cacheService.Close()

	// exactly one load; the repeat read comes from the cache
	repo.EXPECT().
		FindByTypeAndScope(gomock.Any(), model.ConfigDepartments, nil).
		Return(catalogOf(model.ConfigDepartments, activeItem("Engineering", 0)), nil)

	svc := service.NewCatalogService(repo, nil, nil, cacheService, nil)

	first, err := svc.GetByType(context.Background(), "departments", nil)
	assert.NoError(t, err)
	second, err := svc.GetByType(context.Background(), "departments", nil)
	assert.NoError(t, err)
	assert.Equal(t, first.Items, second.Items)
}

func TestMutationRefreshesCachedProjection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCatalogRepositoryIface(ctrl)
	cacheService := service.NewCacheService(service.CacheConfig{TTL: time.Minute, CleanupFreq: time.Minute})
	defer cacheService.Close()

	cat := catalogOf(model.ConfigDepartments, activeItem("Engineering", 0))
	// one load for the cached read, one for the mutation, one for its refresh;
	// the final read must not add a fourth
	repo.EXPECT().
		FindByTypeAndScope(gomock.Any(), model.ConfigDepartments, nil).
		Return(cat, nil).
		Times(3)
	repo.EXPECT().
		AddItem(gomock.Any(), cat.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, item *model.CatalogItem, _ *uuid.UUID) error {
			cat.Items = append(cat.Items, *item)
			return nil
		})

	svc := service.NewCatalogService(repo, nil, nil, cacheService, nil)
	ctx := context.Background()

	view, err := svc.GetByType(ctx, "departments", nil)
	assert.NoError(t, err)
	assert.Len(t, view.Items, 1)

	_, err = svc.AddItem(ctx, service.AddItemInput{ConfigType: "departments", Name: "Sales"})
	assert.NoError(t, err)

	// the stale one-item projection is gone; this read is served from the
	// projection the mutation re-cached, without another load
	view, err = svc.GetByType(ctx, "departments", nil)
	assert.NoError(t, err)
	assert.Len(t, view.Items, 2)
}

func TestItemLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actorID := uuid.New()
	cat := catalogOf(model.ConfigRoles, activeItem("Admin", 0))

	repo := mocks.NewMockCatalogRepositoryIface(ctrl)
	directory := mocks.NewMockUserDirectoryIface(ctrl)

	// stateful fake: reads return the evolving catalog, writes mutate it
	repo.EXPECT().
		FindByTypeAndScope(gomock.Any(), model.ConfigRoles, nil).
		AnyTimes().
		Return(cat, nil)
	repo.EXPECT().
		AddItem(gomock.Any(), cat.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, item *model.CatalogItem, _ *uuid.UUID) error {
			cat.Items = append(cat.Items, *item)
			return nil
		})
	repo.EXPECT().
		SaveItem(gomock.Any(), cat.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, item *model.CatalogItem, _ *uuid.UUID) error {
			*cat.FindItem(item.ID) = *item
			return nil
		})
	repo.EXPECT().
		DeleteItem(gomock.Any(), cat.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, itemID uuid.UUID, _ *uuid.UUID) error {
			kept := cat.Items[:0]
			for _, it := range cat.Items {
				if it.ID != itemID {
					kept = append(kept, it)
				}
			}
			cat.Items = kept
			return nil
		})
	directory.EXPECT().
		CountActiveByField(gomock.Any(), repository.DirectoryFieldRole, "Contractor").
		Return(int64(0), nil)

	svc := newService(repo, directory, nil)
	ctx := context.Background()

	view, err := svc.AddItem(ctx, service.AddItemInput{
		ConfigType:  "roles",
		Name:        "Contractor",
		Description: "External contract staff",
		ActorID:     &actorID,
	})
	assert.NoError(t, err)
	assert.Len(t, view.Items, 2)

	contractorID := view.Items[1].ID

	color := "#111827"
	view, err = svc.UpdateItem(ctx, "roles", nil, contractorID, service.ItemPatch{Color: &color}, &actorID)
	assert.NoError(t, err)
	assert.Equal(t, "#111827", view.Items[1].Color)
	assert.Equal(t, "External contract staff", view.Items[1].Description)

	view, err = svc.RemoveItem(ctx, "roles", nil, contractorID, &actorID)
	assert.NoError(t, err)
	assert.Len(t, view.Items, 1)
	assert.Equal(t, "Admin", view.Items[0].Name)
}
