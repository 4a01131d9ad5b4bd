package store

import (
	"context"
	"io"

	"github.com/plannerx/plx/internal/api"
)

// LoadDimensions replaces the dimension cache for the given company,
// subject to the same stale-response rule as the other scoped loaders.
func (s *Store) LoadDimensions(ctx context.Context, companyID int) ([]Dimension, error) {
	epoch, err := s.begin()
	if err != nil {
		return nil, err
	}

	rows, err := s.client.ListDimensions(ctx, companyID)
	if err != nil {
		return nil, err
	}

	mapped := make([]Dimension, 0, len(rows))
	for _, row := range rows {
		mapped = append(mapped, dimensionFromDTO(row))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch && s.activeCompanyID == companyID {
		s.dimensions = mapped
	}
	return mapped, nil
}

// CreateDimension creates a dimension and prepends it to the cache
func (s *Store) CreateDimension(ctx context.Context, companyID int, in DimensionInput) (Dimension, error) {
	epoch, err := s.begin()
	if err != nil {
		return Dimension{}, err
	}

	dataType := DataTypeText
	if in.DataType != "" {
		dataType = NormalizeDataType(string(in.DataType))
	}

	payload := api.DimensionCreateDTO{
		DimensionKey:  in.Key,
		DimensionName: in.Name,
		Description:   trimmedOrNil(in.Description),
		DataType:      string(dataType),
	}

	row, err := s.client.CreateDimension(ctx, companyID, payload)
	if err != nil {
		return Dimension{}, err
	}
	created := dimensionFromDTO(*row)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch {
		s.dimensions = append([]Dimension{created}, s.dimensions...)
	}
	return created, nil
}

// UpdateDimension patches a dimension. Unset patch fields are omitted
// from the request entirely so the server keeps their current values.
func (s *Store) UpdateDimension(ctx context.Context, companyID, dimensionID int, patch DimensionPatch) (Dimension, error) {
	epoch, err := s.begin()
	if err != nil {
		return Dimension{}, err
	}

	payload := api.DimensionUpdateDTO{
		DimensionName: patch.Name,
		Description:   patch.Description,
		IsActive:      patch.IsActive,
	}
	if patch.DataType != nil {
		normalized := string(NormalizeDataType(string(*patch.DataType)))
		payload.DataType = &normalized
	}

	row, err := s.client.UpdateDimension(ctx, companyID, dimensionID, payload)
	if err != nil {
		return Dimension{}, err
	}
	updated := dimensionFromDTO(*row)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch {
		for i := range s.dimensions {
			if s.dimensions[i].ID == updated.ID {
				s.dimensions[i] = updated
			}
		}
	}
	return updated, nil
}

// LoadDimensionValues fetches a dimension's values and makes that
// dimension the selected one. Switching the selection this way discards
// any pending dirty edits from the previous dimension.
func (s *Store) LoadDimensionValues(ctx context.Context, companyID, dimensionID int) ([]DimensionValue, error) {
	epoch, err := s.begin()
	if err != nil {
		return nil, err
	}

	rows, err := s.client.ListDimensionValues(ctx, companyID, dimensionID)
	if err != nil {
		return nil, err
	}

	mapped := make([]DimensionValue, 0, len(rows))
	for _, row := range rows {
		mapped = append(mapped, dimensionValueFromDTO(row))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch && s.activeCompanyID == companyID {
		s.dimensionValues = mapped
		if s.selectedDimensionID != dimensionID {
			s.selectedDimensionID = dimensionID
			s.dirty = map[int]ValuePatch{}
		}
	}
	return mapped, nil
}

// CreateDimensionValue creates a value and prepends it to the cache
func (s *Store) CreateDimensionValue(ctx context.Context, companyID, dimensionID int, in DimensionValueInput) (DimensionValue, error) {
	epoch, err := s.begin()
	if err != nil {
		return DimensionValue{}, err
	}

	attrs := in.Attributes
	if attrs == nil {
		attrs = map[string]any{}
	}

	payload := api.DimensionValueCreateDTO{
		ValueKey:       in.Key,
		ValueName:      in.Name,
		SortOrder:      in.SortOrder,
		AttributesJSON: attrs,
	}

	row, err := s.client.CreateDimensionValue(ctx, companyID, dimensionID, payload)
	if err != nil {
		return DimensionValue{}, err
	}
	created := dimensionValueFromDTO(*row)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch {
		s.dimensionValues = append([]DimensionValue{created}, s.dimensionValues...)
	}
	return created, nil
}

// UpdateDimensionValue patches a value with the same omit-when-unset
// semantics as UpdateDimension.
func (s *Store) UpdateDimensionValue(ctx context.Context, companyID, dimensionID, valueID int, patch ValuePatch) (DimensionValue, error) {
	epoch, err := s.begin()
	if err != nil {
		return DimensionValue{}, err
	}

	payload := api.DimensionValueUpdateDTO{
		ValueName:      patch.Name,
		SortOrder:      patch.SortOrder,
		AttributesJSON: patch.Attributes,
		IsActive:       patch.IsActive,
	}

	row, err := s.client.UpdateDimensionValue(ctx, companyID, dimensionID, valueID, payload)
	if err != nil {
		return DimensionValue{}, err
	}
	updated := dimensionValueFromDTO(*row)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch {
		for i := range s.dimensionValues {
			if s.dimensionValues[i].ID == updated.ID {
				s.dimensionValues[i] = updated
			}
		}
	}
	return updated, nil
}

// SelectDimension sets the selected dimension without fetching.
// Passing 0 clears the selection. Changing the selection discards
// pending dirty edits.
func (s *Store) SelectDimension(dimensionID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedDimensionID != dimensionID {
		s.selectedDimensionID = dimensionID
		s.dirty = map[int]ValuePatch{}
	}
}

// ImportDimensionsExcel uploads a dimensions workbook and returns the
// structured summary. Cache reloads are the caller's responsibility.
func (s *Store) ImportDimensionsExcel(ctx context.Context, companyID int, filename string, file io.Reader) (ImportSummary, error) {
	if _, err := s.begin(); err != nil {
		return ImportSummary{}, err
	}

	summary, err := s.client.ImportDimensions(ctx, companyID, filename, file)
	if err != nil {
		return ImportSummary{}, err
	}
	return importSummaryFromDTO(*summary), nil
}
