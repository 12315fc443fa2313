package repository

import (
	"net/url"

	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/pkg/apiclient"
)

type CorrectionRepository interface {
	Create(token string, payload model.CorrectionPayload) error
	// FindByDateRange lists documents dated between start and end (YYYY-MM-DD).
	FindByDateRange(token, start, end string) ([]model.CorrectionDocument, error)
	Delete(token, number string) error
}

type correctionRepo struct {
	api *apiclient.Client
}

func NewCorrectionRepo(api *apiclient.Client) CorrectionRepository {
	return &correctionRepo{api}
}

func (r *correctionRepo) Create(token string, payload model.CorrectionPayload) error {
	_, err := r.api.Post(pathCorrection, toCorrectionPayloadDTO(payload), token)
	return err
}

func (r *correctionRepo) FindByDateRange(token, start, end string) ([]model.CorrectionDocument, error) {
	body, err := r.api.Get(pathCorrection, url.Values{"startDate": {start}, "endDate": {end}}, token)
	if err != nil {
		return nil, err
	}
	dtos := apiclient.DecodeArray[documentDTO](body)
	docs := make([]model.CorrectionDocument, 0, len(dtos))
	for _, d := range dtos {
		docs = append(docs, d.toModel())
	}
	return docs, nil
}

func (r *correctionRepo) Delete(token, number string) error {
	return r.api.Delete(pathCorrection+"/"+url.PathEscape(number), token)
}
