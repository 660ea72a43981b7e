package catalog

import "agri-works/internal/model"

// GalleryImage is one tile of the image gallery.
type GalleryImage struct {
	Src         string         `json:"src"`
	ProductName string         `json:"productName"`
	Category    model.Category `json:"category"`
}

// Gallery is the image wall with the category tabs that have images.
type Gallery struct {
	Categories []model.Category `json:"categories"`
	Images     []GalleryImage   `json:"images"`
}

// BuildGallery collects the images of every active product. A product
// without gallery images contributes its primary image instead. When
// category is non-empty only that category's images are returned; the tab
// list always covers every category.
func BuildGallery(products []model.Product, category model.Category) Gallery {
	g := Gallery{
		Categories: []model.Category{},
		Images:     []GalleryImage{},
	}
	seen := make(map[model.Category]bool)

	for _, p := range products {
		if p.Status != model.StatusActive {
			continue
		}

		srcs := p.Images
		if len(srcs) == 0 && p.ImageURL != nil && *p.ImageURL != "" {
			srcs = []string{*p.ImageURL}
		}
		if len(srcs) == 0 {
			continue
		}

		if !seen[p.Category] {
			seen[p.Category] = true
			g.Categories = append(g.Categories, p.Category)
		}
		if category != "" && p.Category != category {
			continue
		}

		for _, src := range srcs {
			g.Images = append(g.Images, GalleryImage{
				Src:         src,
				ProductName: p.Name,
				Category:    p.Category,
			})
		}
	}

	return g
}
