package catalogdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConteos cuadra los contadores del sidebar con la lista real de
// productos: si se agrega o saca un producto sin actualizar los conteos,
// este test lo acusa.
func TestConteos(t *testing.T) {
	porCategoria := map[string]int{}
	porProveedor := map[string]int{}
	for _, p := range products {
		porCategoria[p.Category]++
		porProveedor[p.Supplier]++
	}

	for _, c := range categories {
		if c.ID == "all" {
			assert.Equal(t, len(products), c.Count, "categoría all debe contar todo el catálogo")
			continue
		}
		assert.Equal(t, porCategoria[c.ID], c.Count, "conteo de la categoría %s", c.ID)
	}
	for _, s := range suppliers {
		assert.Equal(t, porProveedor[s.ID], s.Products, "conteo del proveedor %s", s.ID)
	}
}

func TestIDsYSKUsUnicos(t *testing.T) {
	ids := map[int]bool{}
	skus := map[string]bool{}
	for _, p := range products {
		assert.False(t, ids[p.ID], "ID duplicado: %d", p.ID)
		assert.False(t, skus[p.SKU], "SKU duplicado: %s", p.SKU)
		ids[p.ID] = true
		skus[p.SKU] = true
	}
}

func TestTramosConMinQtyDistintosYPositivos(t *testing.T) {
	for _, p := range products {
		vistos := map[int]bool{}
		for _, pb := range p.PriceBreaks {
			require.Greater(t, pb.MinQty, 0, "%s: MinQty debe ser positivo", p.SKU)
			require.Greater(t, pb.Price, int64(0), "%s: precio del tramo debe ser positivo", p.SKU)
			assert.False(t, vistos[pb.MinQty], "%s: MinQty repetido %d", p.SKU, pb.MinQty)
			vistos[pb.MinQty] = true
		}
	}
}

func TestProductByID(t *testing.T) {
	c := New()

	p := c.ProductByID(1)
	require.NotNil(t, p)
	assert.Equal(t, "POL-001", p.SKU)

	assert.Nil(t, c.ProductByID(999), "ID fuera del catálogo debe dar nil")
}

func TestProducts_DevuelveCopiaDefensiva(t *testing.T) {
	c := New()
	lista := c.Products()
	lista[0].Name = "mutado"

	assert.Equal(t, "Polo Piqué Premium", c.Products()[0].Name,
		"mutar la copia no debe afectar el catálogo")
}
