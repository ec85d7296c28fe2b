package repositories_test

import (
	"testing"

	"lanchonete/internal/apperror"
	"lanchonete/internal/models"
	"lanchonete/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockCustomerRepository_EnforcesUniqueness(t *testing.T) {
	repo := repositories.NewMockCustomerRepository()
	require.NoError(t, repo.Create(sampleCustomer()))

	err := repo.Create(sampleCustomer())
	assert.True(t, apperror.IsIntegrity(err))

	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// Saving a customer with its own unique values is not a conflict.
	updated, err := repo.Update(all[0].ID, &all[0])
	require.NoError(t, err)
	assert.Equal(t, all[0].Email, updated.Email)

	assert.NoError(t, repo.Delete(all[0].ID))
	assert.True(t, apperror.IsNotFound(repo.Delete(all[0].ID)))
}

func TestMockProductRepository_CategoryReference(t *testing.T) {
	repo := repositories.NewMockProductRepository(models.Category{ID: 1, Name: "Lanche"})

	product := newProduct("X-Burger", "12.505", 1)
	require.NoError(t, repo.Create(product))
	assert.Equal(t, "Lanche", product.Category.Name)
	assert.Equal(t, "12.51", product.Price.StringFixed(2))

	assert.True(t, apperror.IsIntegrity(repo.Create(newProduct("Suco", "7.00", 3))))

	listed, err := repo.GetByCategory(1)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	none, err := repo.GetByCategory(3)
	require.NoError(t, err)
	assert.Empty(t, none)
}
