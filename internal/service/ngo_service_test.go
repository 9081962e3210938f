package service

import (
	"context"
	"testing"

	"github.com/Shravansapate/legislate-voice-aid/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type fakeNgoRepository struct {
	ngos []*entity.Ngo
}

func (f *fakeNgoRepository) CreateBulk(ctx context.Context, ngos []*entity.Ngo) error {
	f.ngos = append(f.ngos, ngos...)
	return nil
}

func (f *fakeNgoRepository) FindAll(ctx context.Context) ([]*entity.Ngo, error) {
	return f.ngos, nil
}

func (f *fakeNgoRepository) FindByRegion(ctx context.Context, region string) ([]*entity.Ngo, error) {
	var out []*entity.Ngo
	for _, n := range f.ngos {
		if n.Region == region {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNgoRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.ngos)), nil
}

func seedNgoRepo() *fakeNgoRepository {
	return &fakeNgoRepository{ngos: []*entity.Ngo{
		{
			Id:          uuid.New(),
			Name:        "महिला कानूनी सहायता केंद्र",
			EnglishName: "Women Legal Aid Center",
			Location:    "Delhi",
			Region:      "north",
			Speciality:  "महिला अधिकार",
			Languages:   datatypes.JSON([]byte(`["hi-IN","en-IN"]`)),
			Phone:       "+91-11-23385368",
			Whatsapp:    "+91-98765-43210",
			Website:     "https://example.org",
		},
		{
			Id:          uuid.New(),
			Name:        "గ్రామీణ న్యాయ సేవ",
			EnglishName: "Rural Legal Service",
			Location:    "Hyderabad",
			Region:      "south",
			Languages:   datatypes.JSON([]byte(`["te-IN"]`)),
			Phone:       "+91-40-12345678",
		},
	}}
}

func TestListNgos(t *testing.T) {
	svc := NewNgoService(seedNgoRepo(), nopLogger{})

	all, err := svc.ListNgos(context.Background(), "all", "hi-IN")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	north, err := svc.ListNgos(context.Background(), "north", "hi-IN")
	require.NoError(t, err)
	require.Len(t, north, 1)
	assert.Equal(t, "Women Legal Aid Center", north[0].EnglishName)
	assert.Equal(t, []string{"hi-IN", "en-IN"}, north[0].Languages)
	// WhatsApp number wins over the landline for the contact link.
	assert.Contains(t, north[0].ContactUrl, "https://wa.me/919876543210")

	_, err = svc.ListNgos(context.Background(), "central", "hi-IN")
	assert.Error(t, err)
}

func TestListNgosFallsBackToPhoneForContact(t *testing.T) {
	svc := NewNgoService(seedNgoRepo(), nopLogger{})

	south, err := svc.ListNgos(context.Background(), "south", "te-IN")
	require.NoError(t, err)
	require.Len(t, south, 1)
	assert.Contains(t, south[0].ContactUrl, "https://wa.me/914012345678")
}

func TestListRegions(t *testing.T) {
	svc := NewNgoService(seedNgoRepo(), nopLogger{})

	regions := svc.ListRegions(context.Background(), "en-IN")
	require.Len(t, regions, 5)
	assert.Equal(t, "all", regions[0].Value)
	assert.Equal(t, "All Regions", regions[0].Label)

	regions = svc.ListRegions(context.Background(), "te-IN")
	assert.Equal(t, "అన్ని ప్రాంతాలు", regions[0].Label)
}

func TestListHelplines(t *testing.T) {
	svc := NewNgoService(seedNgoRepo(), nopLogger{})

	helplines := svc.ListHelplines(context.Background(), "en-IN")
	require.Len(t, helplines, 4)
	assert.Equal(t, "Women Helpline", helplines[0].Label)
	assert.Equal(t, "1091", helplines[0].Number)
	assert.Equal(t, "100", helplines[1].Number)
	assert.Equal(t, "1098", helplines[2].Number)
	assert.Equal(t, "15100", helplines[3].Number)
}
