package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts every authenticated endpoint on r.
func RegisterRoutes(r fiber.Router, dash *DashboardHandler, lookup *LookupHandler,
	corr *CorrectionHandler, realz *RealizationHandler) {
	r.Get("/menu", dash.GetMenu)
	r.Get("/journal", dash.GetJournal)
	r.Get("/journal/activity", dash.GetActivity)

	r.Get("/lookup/warehouses", lookup.GetWarehouses)
	r.Get("/lookup/correction-types", lookup.GetCorrectionTypes)

	// Koreksi stok
	r.Post("/corrections/forms", corr.OpenForm)
	r.Get("/corrections/forms/:id", corr.GetForm)
	r.Delete("/corrections/forms/:id", corr.CloseForm)
	r.Put("/corrections/forms/:id/header", corr.UpdateHeader)
	r.Post("/corrections/forms/:id/lines", corr.InsertLine)
	r.Delete("/corrections/forms/:id/lines/:key", corr.RemoveLine)
	r.Get("/corrections/forms/:id/stock", corr.SearchStock)
	r.Post("/corrections/forms/:id/pick", corr.Pick)
	r.Post("/corrections/forms/:id/import", corr.ImportStock)
	r.Put("/corrections/forms/:id/lines/:key/:field/draft", corr.StageDraft)
	r.Post("/corrections/forms/:id/lines/:key/:field/commit", corr.Commit)
	r.Post("/corrections/forms/:id/lines/:key/:field/adjust", corr.Adjust)
	r.Get("/corrections/forms/:id/labels", corr.Labels)
	r.Get("/corrections/forms/:id/export", corr.Export)
	r.Post("/corrections/forms/:id/save", corr.Save)
	r.Get("/corrections", corr.ListDocuments)
	r.Delete("/corrections/:number", corr.DeleteDocument)
	r.Get("/corrections/:number/print-url", corr.PrintURL)

	// Realisasi produksi
	r.Post("/realizations/forms", realz.OpenSheet)
	r.Get("/realizations/forms/:id", realz.GetSheet)
	r.Delete("/realizations/forms/:id", realz.CloseSheet)
	r.Put("/realizations/forms/:id/header", realz.UpdateHeader)
	r.Post("/realizations/forms/:id/scan", realz.Scan)
	r.Put("/realizations/forms/:id/lines/:key", realz.UpdateLine)
	r.Delete("/realizations/forms/:id/lines/:key", realz.RemoveLine)
	r.Post("/realizations/forms/:id/save", realz.Save)
}
