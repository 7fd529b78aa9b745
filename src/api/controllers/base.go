package controllers

import "invest/src/repositories"

// Controller bundles the per-resource controllers the handlers call into.
type Controller struct {
	Clients ClientsControllerI
	Assets  AssetsControllerI
}

func NewController(clientRepo repositories.ClientRepository, assetRepo repositories.AssetRepository) *Controller {
	return &Controller{
		Clients: NewClientsController(clientRepo),
		Assets:  NewAssetsController(assetRepo),
	}
}
