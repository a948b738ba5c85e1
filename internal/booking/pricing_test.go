package booking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/party-bliss/internal/model"
)

func TestComputeTotals_NoSurchargeUpToIncludedGuests(t *testing.T) {
	for guests := 0; guests <= IncludedGuests; guests++ {
		got := ComputeTotals("basic", nil, guests)
		assert.Zero(t, got.GuestTotal, "guests=%d", guests)
	}
}

func TestComputeTotals_SurchargePerExtraGuest(t *testing.T) {
	for k := 1; k <= 25; k++ {
		got := ComputeTotals("basic", nil, IncludedGuests+k)
		assert.Equal(t, ExtraGuestRate*k, got.GuestTotal, "k=%d", k)
	}
}

func TestComputeTotals_GrandIsSumOfParts(t *testing.T) {
	addonSets := [][]string{
		nil,
		{"facepaint"},
		{"magician", "pinata"},
		{"facepaint", "magician", "pinata", "candybar"},
	}
	pkgIDs := []string{"basic", "deluxe", "ultimate", "missing"}
	for _, pkg := range pkgIDs {
		for _, addons := range addonSets {
			for _, guests := range []int{0, 1, 10, 11, 40} {
				got := ComputeTotals(pkg, addons, guests)
				assert.Equal(t, got.Base+got.AddonTotal+got.GuestTotal, got.Grand)
			}
		}
	}
}

func TestComputeTotals_Example(t *testing.T) {
	got := ComputeTotals("deluxe", []string{"magician", "candybar"}, 15)
	assert.Equal(t, PriceBreakdown{Base: 399, AddonTotal: 270, GuestTotal: 40, Grand: 709}, got)
}

func TestComputeTotals_UnknownPackageFallsBackToZero(t *testing.T) {
	got := ComputeTotals("platinum", []string{"pinata"}, 10)
	assert.Zero(t, got.Base)
	assert.Equal(t, 45, got.Grand)
}

func TestComputeTotals_UnknownAndDuplicateAddons(t *testing.T) {
	got := ComputeTotals("basic", []string{"pinata", "unicorn", "pinata"}, 10)
	assert.Equal(t, 45, got.AddonTotal)
}

func TestComputeTotals_AllCatalogAddons(t *testing.T) {
	ids := make([]string, 0, len(model.Addons))
	sum := 0
	for _, a := range model.Addons {
		ids = append(ids, a.ID)
		sum += a.Price
	}
	assert.Equal(t, sum, ComputeTotals("ultimate", ids, 10).AddonTotal)
}

func TestComputeTotals_GuestCountIsBounded(t *testing.T) {
	capped := ComputeTotals("basic", nil, MaxGuests)
	assert.Equal(t, ExtraGuestRate*(MaxGuests-IncludedGuests), capped.GuestTotal)

	for _, guests := range []int{MaxGuests + 1, math.MaxInt32, math.MaxInt} {
		got := ComputeTotals("basic", nil, guests)
		assert.Equal(t, capped, got, "guests=%d", guests)
		assert.GreaterOrEqual(t, got.Grand, got.Base)
	}
	assert.Zero(t, ComputeTotals("basic", nil, math.MinInt).GuestTotal)
}
