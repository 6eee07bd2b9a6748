package usecase

import (
	"sync"

	"stylehub/internal/domain/entity"
)

// FilterUseCase holds the currently active filter spec. Toggle
// operations are presence-based insert-or-remove, so applying the same
// toggle twice restores the original spec.
type FilterUseCase struct {
	mu   sync.Mutex
	spec entity.FilterSpec
}

func NewFilterUseCase() *FilterUseCase {
	return &FilterUseCase{
		spec: entity.DefaultFilterSpec(),
	}
}

// Spec returns a snapshot of the active filter spec.
func (uc *FilterUseCase) Spec() entity.FilterSpec {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.snapshot()
}

func (uc *FilterUseCase) ToggleCategory(value string) entity.FilterSpec {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.spec.Categories = toggleValue(uc.spec.Categories, value)
	return uc.snapshot()
}

func (uc *FilterUseCase) ToggleBrand(value string) entity.FilterSpec {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.spec.Brands = toggleValue(uc.spec.Brands, value)
	return uc.snapshot()
}

func (uc *FilterUseCase) ToggleSize(value string) entity.FilterSpec {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.spec.Sizes = toggleValue(uc.spec.Sizes, value)
	return uc.snapshot()
}

func (uc *FilterUseCase) ToggleColor(value string) entity.FilterSpec {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.spec.Colors = toggleValue(uc.spec.Colors, value)
	return uc.snapshot()
}

func (uc *FilterUseCase) SetPriceRange(min, max float64) entity.FilterSpec {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.spec.PriceRange = &entity.PriceRange{Min: min, Max: max}
	return uc.snapshot()
}

func (uc *FilterUseCase) SetSortBy(sortBy entity.SortKey) entity.FilterSpec {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.spec.SortBy = sortBy
	return uc.snapshot()
}

// ClearAllFilters resets the spec to its documented default state.
func (uc *FilterUseCase) ClearAllFilters() entity.FilterSpec {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.spec = entity.DefaultFilterSpec()
	return uc.snapshot()
}

// ActiveFilterCount is the sum of the four constraint set sizes.
func (uc *FilterUseCase) ActiveFilterCount() int {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.spec.ActiveFilterCount()
}

// snapshot copies the spec so callers cannot mutate the held state.
// Callers must hold uc.mu.
func (uc *FilterUseCase) snapshot() entity.FilterSpec {
	spec := uc.spec
	spec.Categories = append([]string{}, uc.spec.Categories...)
	spec.Brands = append([]string{}, uc.spec.Brands...)
	spec.Sizes = append([]string{}, uc.spec.Sizes...)
	spec.Colors = append([]string{}, uc.spec.Colors...)
	if uc.spec.PriceRange != nil {
		priceRange := *uc.spec.PriceRange
		spec.PriceRange = &priceRange
	}
	return spec
}

func toggleValue(set []string, value string) []string {
	for i, v := range set {
		if v == value {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, value)
}
