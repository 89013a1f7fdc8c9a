// internal/services/shoe_service_test.go
package services

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/soleshelf/inventory-backend/internal/repository"
	"github.com/soleshelf/inventory-backend/internal/utils"
)

type ShoeServiceTestSuite struct {
	suite.Suite
	repo    repository.ShoeRepository
	service *ShoeService
}

func (suite *ShoeServiceTestSuite) SetupTest() {
	log := logrus.New()
	log.SetOutput(io.Discard)

	suite.repo = repository.NewMemoryShoeRepository()
	suite.service = NewShoeService(suite.repo, log)
}

func (suite *ShoeServiceTestSuite) createShoe(name, brand, baseColor string) uint {
	shoe, err := suite.service.CreateShoe(&CreateShoeRequest{
		Name:      name,
		Brand:     brand,
		Size:      "US 9",
		BaseColor: baseColor,
		Price:     99.99,
	})
	require.NoError(suite.T(), err)
	return shoe.ID
}

func (suite *ShoeServiceTestSuite) TestCreateShoeMaterializesBaseColorVariation() {
	shoe, err := suite.service.CreateShoe(&CreateShoeRequest{
		Name:      "Air Zoom",
		Brand:     "Nike",
		Size:      "US 9",
		BaseColor: "Blue",
		Price:     129.99,
	})
	require.NoError(suite.T(), err)

	require.NotNil(suite.T(), shoe.CurrentColor)
	assert.Equal(suite.T(), "Blue", *shoe.CurrentColor)
	assert.Equal(suite.T(), "Blue", shoe.BaseColor)
	assert.True(suite.T(), shoe.IsAvailable)

	require.Len(suite.T(), shoe.Variations, 1)
	variation := shoe.Variations[0]
	assert.Equal(suite.T(), "Blue", variation.ColorName)
	assert.Equal(suite.T(), "#0000FF", variation.HexCode)
	assert.Equal(suite.T(), 10, variation.StockQuantity)
	assert.True(suite.T(), variation.IsActive)

	assert.Equal(suite.T(), []string{"Blue"}, shoe.AvailableColors)
}

func (suite *ShoeServiceTestSuite) TestCreateShoeUnknownColorFallsBackToDefaultHex() {
	shoe, err := suite.service.CreateShoe(&CreateShoeRequest{
		Name:      "Trail Runner",
		Brand:     "Salomon",
		Size:      "US 11",
		BaseColor: "Sunset Coral",
		Price:     149.50,
	})
	require.NoError(suite.T(), err)

	require.Len(suite.T(), shoe.Variations, 1)
	assert.Equal(suite.T(), "#808080", shoe.Variations[0].HexCode)
}

func (suite *ShoeServiceTestSuite) TestCreateShoeValidation() {
	cases := []CreateShoeRequest{
		{Name: "", Brand: "Nike", Size: "US 9", BaseColor: "Blue", Price: 10},
		{Name: "Air Zoom", Brand: "", Size: "US 9", BaseColor: "Blue", Price: 10},
		{Name: "Air Zoom", Brand: "Nike", Size: "", BaseColor: "Blue", Price: 10},
		{Name: "Air Zoom", Brand: "Nike", Size: "US 9", BaseColor: "", Price: 10},
		{Name: "Air Zoom", Brand: "Nike", Size: "US 9", BaseColor: "Blue", Price: 0},
		{Name: "Air Zoom", Brand: "Nike", Size: "US 9", BaseColor: "Blue", Price: -5},
	}

	for _, req := range cases {
		_, err := suite.service.CreateShoe(&req)
		assert.Error(suite.T(), err)
	}

	shoes, err := suite.service.ListShoes("", "", paginationAll())
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), shoes)
}

func (suite *ShoeServiceTestSuite) TestCreateShoeDuplicateNameUnderBrandFails() {
	suite.createShoe("Air Zoom", "Nike", "Blue")

	_, err := suite.service.CreateShoe(&CreateShoeRequest{
		Name:      "air zoom",
		Brand:     "NIKE",
		Size:      "US 10",
		BaseColor: "Red",
		Price:     99,
	})
	assert.ErrorIs(suite.T(), err, ErrDuplicateShoe)

	shoes, err := suite.service.ListShoes("", "", paginationAll())
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), shoes, 1)
}

func (suite *ShoeServiceTestSuite) TestSameNameDifferentBrandAllowed() {
	suite.createShoe("Classic", "Nike", "Blue")

	_, err := suite.service.CreateShoe(&CreateShoeRequest{
		Name:      "Classic",
		Brand:     "Reebok",
		Size:      "US 9",
		BaseColor: "White",
		Price:     79.99,
	})
	assert.NoError(suite.T(), err)
}

func (suite *ShoeServiceTestSuite) TestChangeColorToMissingVariationFails() {
	id := suite.createShoe("Air Zoom", "Nike", "Blue")

	_, err := suite.service.ChangeColor(id, "Red")
	assert.ErrorIs(suite.T(), err, ErrColorNotAvailable)

	shoe, err := suite.service.GetShoe(id)
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), shoe.CurrentColor)
	assert.Equal(suite.T(), "Blue", *shoe.CurrentColor)
}

func (suite *ShoeServiceTestSuite) TestChangeColorNormalizesToStoredCasing() {
	id := suite.createShoe("Air Zoom", "Nike", "Blue")

	_, err := suite.service.CreateVariation(id, &CreateVariationRequest{
		ColorName:     "Red",
		HexCode:       "#FF0000",
		StockQuantity: 5,
	})
	require.NoError(suite.T(), err)

	newColor, err := suite.service.ChangeColor(id, "rEd")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Red", newColor)

	shoe, err := suite.service.GetShoe(id)
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), shoe.CurrentColor)
	assert.Equal(suite.T(), "Red", *shoe.CurrentColor)
	require.NotNil(suite.T(), shoe.UpdatedAt)
}

func (suite *ShoeServiceTestSuite) TestChangeColorIgnoresZeroStockVariations() {
	id := suite.createShoe("Air Zoom", "Nike", "Blue")

	_, err := suite.service.CreateVariation(id, &CreateVariationRequest{
		ColorName:     "Green",
		HexCode:       "#008000",
		StockQuantity: 0,
	})
	require.NoError(suite.T(), err)

	_, err = suite.service.ChangeColor(id, "Green")
	assert.ErrorIs(suite.T(), err, ErrColorNotAvailable)
}

func (suite *ShoeServiceTestSuite) TestChangeColorUnknownShoe() {
	_, err := suite.service.ChangeColor(999, "Blue")
	assert.ErrorIs(suite.T(), err, ErrShoeNotFound)
}

func (suite *ShoeServiceTestSuite) TestSoftDeleteKeepsVariationsFetchable() {
	id := suite.createShoe("Air Zoom", "Nike", "Blue")

	shoe, err := suite.service.GetShoe(id)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), shoe.Variations, 1)
	variationID := shoe.Variations[0].ID

	affected, err := suite.service.DeleteShoe(id)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), affected)

	shoes, err := suite.service.ListShoes("", "", paginationAll())
	require.NoError(suite.T(), err)
	assert.Empty(suite.T(), shoes)

	variation, err := suite.service.GetVariation(variationID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Blue", variation.ColorName)
	assert.True(suite.T(), variation.IsActive)
}

func (suite *ShoeServiceTestSuite) TestDeleteShoeTwiceReportsNoRowAffected() {
	id := suite.createShoe("Air Zoom", "Nike", "Blue")

	affected, err := suite.service.DeleteShoe(id)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), affected)

	affected, err = suite.service.DeleteShoe(id)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), affected)
}

func (suite *ShoeServiceTestSuite) TestVariationColorNameUniquePerShoe() {
	id := suite.createShoe("Air Zoom", "Nike", "Blue")

	_, err := suite.service.CreateVariation(id, &CreateVariationRequest{
		ColorName:     "BLUE",
		HexCode:       "#0000FF",
		StockQuantity: 3,
	})
	assert.ErrorIs(suite.T(), err, ErrDuplicateColor)

	other := suite.createShoe("Pegasus", "Nike", "Red")
	_, err = suite.service.CreateVariation(other, &CreateVariationRequest{
		ColorName:     "Blue",
		HexCode:       "#0000FF",
		StockQuantity: 3,
	})
	assert.NoError(suite.T(), err)
}

func (suite *ShoeServiceTestSuite) TestCreateVariationDerivesHexWhenOmitted() {
	id := suite.createShoe("Air Zoom", "Nike", "Blue")

	variation, err := suite.service.CreateVariation(id, &CreateVariationRequest{
		ColorName:     "Navy",
		StockQuantity: 2,
	})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "#000080", variation.HexCode)
	assert.True(suite.T(), variation.IsActive)
}

func (suite *ShoeServiceTestSuite) TestUpdateShoeStampsAndPreservesBaseColor() {
	id := suite.createShoe("Air Zoom", "Nike", "Blue")

	shoe, err := suite.service.UpdateShoe(id, &UpdateShoeRequest{
		Name:        "Air Zoom 2",
		Brand:       "Nike",
		Size:        "US 9.5",
		Price:       139.99,
		Description: "Updated colorway drop.",
	})
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), "Air Zoom 2", shoe.Name)
	assert.Equal(suite.T(), "Blue", shoe.BaseColor)
	require.NotNil(suite.T(), shoe.CurrentColor)
	assert.Equal(suite.T(), "Blue", *shoe.CurrentColor)
	require.NotNil(suite.T(), shoe.UpdatedAt)
}

func (suite *ShoeServiceTestSuite) TestUpdateShoeNotFound() {
	_, err := suite.service.UpdateShoe(42, &UpdateShoeRequest{
		Name:  "Ghost",
		Brand: "Nobody",
		Size:  "US 9",
		Price: 10,
	})
	assert.ErrorIs(suite.T(), err, ErrShoeNotFound)
}

func (suite *ShoeServiceTestSuite) TestListFiltersAndPrecedence() {
	suite.createShoe("Air Zoom", "Nike", "Blue")
	suite.createShoe("Ultraboost", "Adidas", "White")
	suite.createShoe("Gel Kayano", "Asics", "Black")

	byBrand, err := suite.service.ListShoes("adi", "", paginationAll())
	require.NoError(suite.T(), err)
	require.Len(suite.T(), byBrand, 1)
	assert.Equal(suite.T(), "Ultraboost", byBrand[0].Name)

	// Search term wins over a brand filter when both are present.
	bySearch, err := suite.service.ListShoes("adi", "kayano", paginationAll())
	require.NoError(suite.T(), err)
	require.Len(suite.T(), bySearch, 1)
	assert.Equal(suite.T(), "Gel Kayano", bySearch[0].Name)

	all, err := suite.service.ListShoes("", "", paginationAll())
	require.NoError(suite.T(), err)
	require.Len(suite.T(), all, 3)
	assert.Equal(suite.T(), "Air Zoom", all[0].Name)
	assert.Equal(suite.T(), "Gel Kayano", all[1].Name)
	assert.Equal(suite.T(), "Ultraboost", all[2].Name)
}

// Worked end-to-end scenario: create, fail a color change, add the
// variation, change again.
func (suite *ShoeServiceTestSuite) TestColorChangeLifecycle() {
	shoe, err := suite.service.CreateShoe(&CreateShoeRequest{
		Name:      "Air Zoom",
		Brand:     "Nike",
		Size:      "US 9",
		BaseColor: "Blue",
		Price:     129.99,
	})
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), shoe.CurrentColor)
	assert.Equal(suite.T(), "Blue", *shoe.CurrentColor)

	_, err = suite.service.ChangeColor(shoe.ID, "Red")
	assert.ErrorIs(suite.T(), err, ErrColorNotAvailable)

	reloaded, err := suite.service.GetShoe(shoe.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Blue", *reloaded.CurrentColor)

	_, err = suite.service.CreateVariation(shoe.ID, &CreateVariationRequest{
		ColorName:     "Red",
		HexCode:       "#FF0000",
		StockQuantity: 5,
	})
	require.NoError(suite.T(), err)

	newColor, err := suite.service.ChangeColor(shoe.ID, "Red")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Red", newColor)

	final, err := suite.service.GetShoe(shoe.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Red", *final.CurrentColor)
	assert.ElementsMatch(suite.T(), []string{"Blue", "Red"}, final.AvailableColors)
}

func TestShoeServiceSuite(t *testing.T) {
	suite.Run(t, new(ShoeServiceTestSuite))
}

func TestHexForColor(t *testing.T) {
	assert.Equal(t, "#FFFFFF", HexForColor("White"))
	assert.Equal(t, "#000000", HexForColor("black"))
	assert.Equal(t, "#808080", HexForColor("Gray"))
	assert.Equal(t, "#808080", HexForColor("grey"))
	assert.Equal(t, "#F5F5DC", HexForColor(" Beige "))
	assert.Equal(t, "#808080", HexForColor("Chartreuse"))
}

func paginationAll() utils.PaginationParams {
	return utils.PaginationParams{Page: 1}
}
