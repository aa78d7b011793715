package converter

import (
	"github.com/hfsolutions/catalog-backend/internal/usecase"
)

type ProductConverter interface {
	ToRedisModel(res *usecase.ProductRes) *ProductRedisModel
	ToUseCase(model *ProductRedisModel) *usecase.ProductRes
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToRedisModel(res *usecase.ProductRes) *ProductRedisModel {
	return &ProductRedisModel{
		ID:           res.ID,
		Title:        res.Title,
		Description:  res.Description,
		Price:        res.Price,
		Stock:        res.Stock,
		CategoryID:   res.CategoryID,
		CategoryName: res.CategoryName,
		RatingRate:   res.Rating.Rate,
		RatingCount:  res.Rating.Count,
		Image:        res.Image,
	}
}

func (c *ProductConverterImpl) ToUseCase(model *ProductRedisModel) *usecase.ProductRes {
	return &usecase.ProductRes{
		ID:           model.ID,
		Title:        model.Title,
		Description:  model.Description,
		Price:        model.Price,
		Stock:        model.Stock,
		CategoryID:   model.CategoryID,
		CategoryName: model.CategoryName,
		Rating: usecase.RatingRes{
			Rate:  model.RatingRate,
			Count: model.RatingCount,
		},
		Image: model.Image,
	}
}
