package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Shravansapate/legislate-voice-aid/internal/dto"
	"github.com/Shravansapate/legislate-voice-aid/internal/entity"
	"github.com/Shravansapate/legislate-voice-aid/internal/pkg/logger"
	"github.com/Shravansapate/legislate-voice-aid/internal/repository/contract"
	"github.com/Shravansapate/legislate-voice-aid/pkg/export"
	"github.com/Shravansapate/legislate-voice-aid/pkg/i18n"
)

// regionValues is the fixed filter set; "all" disables the filter.
var regionValues = []string{"all", "north", "south", "west", "east"}

var regionLabelKeys = map[string]string{
	"all":   "regionAll",
	"north": "regionNorth",
	"south": "regionSouth",
	"west":  "regionWest",
	"east":  "regionEast",
}

// helplines are national numbers, identical for every region.
var helplines = []struct {
	labelKey string
	number   string
}{
	{"womenHelpline", "1091"},
	{"policeHelp", "100"},
	{"childHelpline", "1098"},
	{"legalAidHelpline", "15100"},
}

type INgoService interface {
	ListNgos(ctx context.Context, region string, language string) ([]dto.NgoResponse, error)
	ListRegions(ctx context.Context, language string) []dto.RegionOptionResponse
	ListHelplines(ctx context.Context, language string) []dto.HelplineResponse
}

type ngoService struct {
	repo   contract.NgoRepository
	logger logger.ILogger
}

func NewNgoService(repo contract.NgoRepository, log logger.ILogger) INgoService {
	return &ngoService{
		repo:   repo,
		logger: log,
	}
}

func (ns *ngoService) ListNgos(ctx context.Context, region string, language string) ([]dto.NgoResponse, error) {
	if !isKnownRegion(region) {
		return nil, fmt.Errorf("unknown region: %q", region)
	}

	var (
		ngos []*entity.Ngo
		err  error
	)
	if region == "" || region == "all" {
		ngos, err = ns.repo.FindAll(ctx)
	} else {
		ngos, err = ns.repo.FindByRegion(ctx, region)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NgoResponse, 0, len(ngos))
	for _, ngo := range ngos {
		responses = append(responses, toNgoResponse(ngo))
	}
	return responses, nil
}

// ListRegions returns the filter options with labels in the caller's language.
func (ns *ngoService) ListRegions(ctx context.Context, language string) []dto.RegionOptionResponse {
	lang := i18n.Parse(language)
	options := make([]dto.RegionOptionResponse, 0, len(regionValues))
	for _, value := range regionValues {
		options = append(options, dto.RegionOptionResponse{
			Value: value,
			Label: i18n.Lookup(regionLabelKeys[value], lang),
		})
	}
	return options
}

func (ns *ngoService) ListHelplines(ctx context.Context, language string) []dto.HelplineResponse {
	lang := i18n.Parse(language)
	responses := make([]dto.HelplineResponse, 0, len(helplines))
	for _, h := range helplines {
		responses = append(responses, dto.HelplineResponse{
			Label:  i18n.Lookup(h.labelKey, lang),
			Number: h.number,
		})
	}
	return responses
}

func isKnownRegion(region string) bool {
	if region == "" {
		return true
	}
	for _, v := range regionValues {
		if v == region {
			return true
		}
	}
	return false
}

func toNgoResponse(ngo *entity.Ngo) dto.NgoResponse {
	var languages []string
	if len(ngo.Languages) > 0 {
		// Stored as a JSON array; a malformed row just yields no languages.
		_ = json.Unmarshal(ngo.Languages, &languages)
	}

	whatsapp := ngo.Whatsapp
	if whatsapp == "" {
		whatsapp = ngo.Phone
	}

	return dto.NgoResponse{
		Id:          ngo.Id,
		Name:        ngo.Name,
		EnglishName: ngo.EnglishName,
		Location:    ngo.Location,
		Region:      ngo.Region,
		Speciality:  ngo.Speciality,
		Languages:   languages,
		Phone:       ngo.Phone,
		Website:     ngo.Website,
		ContactUrl:  export.NGOContactLink(whatsapp),
	}
}
