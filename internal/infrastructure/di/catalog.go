package di

import (
	catalogcmd "github.com/Hiro-mackay/gc-rental/internal/usecase/catalog/command"
	catalogqry "github.com/Hiro-mackay/gc-rental/internal/usecase/catalog/query"
)

// CatalogUseCases はCatalog関連のUseCaseを保持します
type CatalogUseCases struct {
	// Commands
	CreateApartment     *catalogcmd.CreateApartmentCommand
	UpdateApartment     *catalogcmd.UpdateApartmentCommand
	DeleteApartment     *catalogcmd.DeleteApartmentCommand
	GenerateDescription *catalogcmd.GenerateDescriptionCommand
	CreatePhotoUpload   *catalogcmd.CreatePhotoUploadCommand

	// Queries
	ListApartments    *catalogqry.ListApartmentsQuery
	GetApartment      *catalogqry.GetApartmentQuery
	ListAllApartments *catalogqry.ListAllApartmentsQuery
}

// NewCatalogUseCases は新しいCatalogUseCasesを作成します
func NewCatalogUseCases(c *Container) *CatalogUseCases {
	return &CatalogUseCases{
		CreateApartment:     catalogcmd.NewCreateApartmentCommand(c.ApartmentRepo, c.ListingCache),
		UpdateApartment:     catalogcmd.NewUpdateApartmentCommand(c.ApartmentRepo, c.ListingCache),
		DeleteApartment:     catalogcmd.NewDeleteApartmentCommand(c.ApartmentRepo, c.ListingCache),
		GenerateDescription: catalogcmd.NewGenerateDescriptionCommand(c.DescriptionGenerator),
		CreatePhotoUpload:   catalogcmd.NewCreatePhotoUploadCommand(c.ApartmentRepo, c.PhotoStorage),
		ListApartments:      catalogqry.NewListApartmentsQuery(c.ApartmentRepo, c.ListingCache),
		GetApartment:        catalogqry.NewGetApartmentQuery(c.ApartmentRepo),
		ListAllApartments:   catalogqry.NewListAllApartmentsQuery(c.ApartmentRepo),
	}
}
