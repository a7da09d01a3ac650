package catalogapi

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
)

const (
	productsPath   = "/api/products"
	categoriesPath = "/api/categories"
	uploadPath     = "/api/upload"
)

// ListProducts возвращает товары; collection == nil означает все товары.
func (c *Client) ListProducts(ctx context.Context, collection *domain.Collection) ([]domain.Product, error) {
	const op = "Client.ListProducts"

	path := productsPath
	if collection != nil {
		path += "?" + url.Values{"collection": {string(*collection)}}.Encode()
	}

	var products []domain.Product
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, payload domain.ProductPayload) error {
	const op = "Client.CreateProduct"

	if err := c.doJSON(ctx, http.MethodPost, productsPath, payload, nil); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, payload domain.ProductPayload) error {
	const op = "Client.UpdateProduct"

	if err := c.doJSON(ctx, http.MethodPut, productsPath+"/"+url.PathEscape(id), payload, nil); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	const op = "Client.DeleteProduct"

	if err := c.doJSON(ctx, http.MethodDelete, productsPath+"/"+url.PathEscape(id), nil, nil); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "Client.ListCategories"

	var categories []domain.Category
	if err := c.doJSON(ctx, http.MethodGet, categoriesPath, nil, &categories); err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, payload domain.CategoryPayload) error {
	const op = "Client.CreateCategory"

	if err := c.doJSON(ctx, http.MethodPost, categoriesPath, payload, nil); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, payload domain.CategoryPayload) error {
	const op = "Client.UpdateCategory"

	if err := c.doJSON(ctx, http.MethodPut, categoriesPath+"/"+url.PathEscape(id), payload, nil); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	const op = "Client.DeleteCategory"

	if err := c.doJSON(ctx, http.MethodDelete, categoriesPath+"/"+url.PathEscape(id), nil, nil); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

type uploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

// UploadImage отправляет файл полем "image" в multipart/form-data и возвращает imageUrl из ответа.
func (c *Client) UploadImage(ctx context.Context, file *domain.ImageFile) (string, error) {
	const op = "Client.UploadImage"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, file.Name))
	if file.MimeType != "" {
		header.Set("Content-Type", file.MimeType)
	}

	part, err := mw.CreatePart(header)
	if err != nil {
		return "", e.Wrap(op, err)
	}
	if _, err := part.Write(file.Data); err != nil {
		return "", e.Wrap(op, err)
	}
	if err := mw.Close(); err != nil {
		return "", e.Wrap(op, err)
	}

	var res uploadResponse
	if err := c.do(ctx, http.MethodPost, uploadPath, &buf, mw.FormDataContentType(), &res); err != nil {
		return "", e.Wrap(op, err)
	}
	if res.ImageURL == "" {
		return "", e.Wrap(op, fmt.Errorf("%w: empty imageUrl", e.ErrMalformedResponse))
	}

	return res.ImageURL, nil
}
