package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"ecokart/internal/domain/model"
	repo "ecokart/internal/repository"

	"github.com/labstack/gommon/log"
)

// products.json のルート。
type document struct {
	Products []model.Product `json:"products"`
}

// Catalog は商品一覧を一度だけ読み込む読み取り専用リポジトリ。
// 読み込み失敗はリトライせず、そのまま固定されてエラー状態になる。
type Catalog struct {
	source   func() ([]byte, error)
	once     sync.Once
	products []model.Product
	err      error
}

// NewHTTPCatalog はURLからproducts.jsonを取得するカタログを作る。
func NewHTTPCatalog(url string) *Catalog {
	return &Catalog{source: func() ([]byte, error) {
		resp, err := http.Get(url)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("catalog fetch: unexpected status %d", resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}}
}

// NewFileCatalog はローカルファイルから読むカタログを作る。
func NewFileCatalog(path string) *Catalog {
	return &Catalog{source: func() ([]byte, error) {
		return os.ReadFile(path)
	}}
}

func (c *Catalog) load() {
	raw, err := c.source()
	if err != nil {
		// 失敗は一度だけ報告する
		log.Errorf("catalog: load failed: %v", err)
		c.err = err
		return
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Errorf("catalog: decode failed: %v", err)
		c.err = err
		return
	}
	c.products = doc.Products
}

func (c *Catalog) List(ctx context.Context) ([]model.Product, error) {
	c.once.Do(c.load)

	if c.err != nil {
		return nil, c.err
	}
	return c.products, nil
}

func (c *Catalog) FindByID(ctx context.Context, id int64) (model.Product, error) {
	products, err := c.List(ctx)
	if err != nil {
		return model.Product{}, err
	}

	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}
