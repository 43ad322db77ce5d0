package get_packs

import "github.com/m04kA/nuisibook-booking/internal/domain"

// PackResponse пакет услуг
type PackResponse struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Fallback bool   `json:"fallback,omitempty"` // slug не найден, возвращен пакет по умолчанию
}

// PacksResponse каталог пакетов и доступные временные слоты
type PacksResponse struct {
	Packs       []PackResponse `json:"packs"`
	DefaultSlug string         `json:"default_slug"`
	TimeSlots   []string       `json:"time_slots"`
}

func fromDomainPack(p domain.Pack) PackResponse {
	return PackResponse{Slug: p.Slug, Name: p.Name, Duration: p.Duration}
}

// GetCatalogResponse формирует каталог
func GetCatalogResponse() *PacksResponse {
	packs := make([]PackResponse, 0, len(domain.Packs))
	for _, p := range domain.Packs {
		packs = append(packs, fromDomainPack(p))
	}
	return &PacksResponse{
		Packs:       packs,
		DefaultSlug: domain.DefaultPackSlug,
		TimeSlots:   append([]string(nil), domain.TimeSlots...),
	}
}
