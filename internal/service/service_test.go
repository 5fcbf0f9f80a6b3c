package service_test

import (
	"context"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dishcovery/dishcovery/backend/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Recipe{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// fakeCache records cache traffic for assertions and can simulate a
// backend outage.
type fakeCache struct {
	mu          sync.Mutex
	entries     map[string]*models.Recipe
	failing     bool
	gets        int
	sets        int
	invalidates int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*models.Recipe)}
}

func (c *fakeCache) GetRecipe(ctx context.Context, id string) (*models.Recipe, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.failing {
		return nil, false
	}
	r, ok := c.entries[id]
	return r, ok
}

func (c *fakeCache) SetRecipe(ctx context.Context, recipe *models.Recipe) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.failing {
		return
	}
	c.entries[recipe.ID.String()] = recipe
}

func (c *fakeCache) InvalidateList(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidates++
}

func validRecipe(name string) *models.Recipe {
	return &models.Recipe{
		Name:         name,
		Description:  "a test dish",
		Image:        "test.jpg",
		Ingredients:  models.StringArray{"ingredient1", "ingredient2"},
		Instructions: models.StringArray{"step1", "step2"},
	}
}
