package store

import "context"

// getStringMap loads a string map record, returning an empty map when
// absent.
func (s *Store) getStringMap(ctx context.Context, key string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m := make(map[string]string)
	if _, err := s.getJSON(key, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// setStringMap stores a string map record, deleting it when empty.
func (s *Store) setStringMap(ctx context.Context, key string, m map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(m) == 0 {
		return s.deleteKey(key)
	}
	return s.setJSON(key, m)
}

// GetCategoryOverrides retrieves the per-item category overrides keyed by
// normalized item key.
func (s *Store) GetCategoryOverrides(ctx context.Context) (map[string]string, error) {
	return s.getStringMap(ctx, KeyCategoryOverride)
}

// SetCategoryOverrides replaces the category overrides.
func (s *Store) SetCategoryOverrides(ctx context.Context, m map[string]string) error {
	return s.setStringMap(ctx, KeyCategoryOverride, m)
}

// GetQuantityOverrides retrieves the per-item quantity overrides keyed by
// normalized item key.
func (s *Store) GetQuantityOverrides(ctx context.Context) (map[string]string, error) {
	return s.getStringMap(ctx, KeyQuantityOverride)
}

// SetQuantityOverrides replaces the quantity overrides.
func (s *Store) SetQuantityOverrides(ctx context.Context, m map[string]string) error {
	return s.setStringMap(ctx, KeyQuantityOverride, m)
}

// GetOpenCategories retrieves which list sections are expanded. Categories
// absent from the map default to open on the client.
func (s *Store) GetOpenCategories(ctx context.Context) (map[string]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m := make(map[string]bool)
	if _, err := s.getJSON(KeyOpenCategories, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// SetOpenCategories replaces the expanded-section map.
func (s *Store) SetOpenCategories(ctx context.Context, m map[string]bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(m) == 0 {
		return s.deleteKey(KeyOpenCategories)
	}
	return s.setJSON(KeyOpenCategories, m)
}
