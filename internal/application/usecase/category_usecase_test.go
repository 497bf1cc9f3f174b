package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/messmate-api/internal/application/dto"
	"github.com/jhoicas/messmate-api/internal/application/usecase"
	"github.com/jhoicas/messmate-api/internal/domain"
	"github.com/jhoicas/messmate-api/internal/domain/entity"
)

func newCategoryUC() (*usecase.CategoryUseCase, *fakeCategoryRepo) {
	repo := &fakeCategoryRepo{}
	return usecase.NewCategoryUseCase(repo), repo
}

func mustCreateCategory(t *testing.T, uc *usecase.CategoryUseCase, name string) *dto.CategoryResponse {
	t.Helper()
	out, err := uc.Create(dto.CreateCategoryRequest{Name: name})
	require.NoError(t, err)
	return out
}

// La unicidad de nombres ignora mayúsculas y espacios en los bordes:
// "Snacks" y "snacks " son el mismo nombre.
func TestCategory_CrearNombreDuplicadoConDistintaCaja(t *testing.T) {
	uc, _ := newCategoryUC()
	mustCreateCategory(t, uc, "Snacks")

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "snacks "})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"crear 'snacks ' con 'Snacks' vivo debe colisionar")
}

// Tras borrar lógicamente una categoría, su nombre queda libre para una nueva.
func TestCategory_NombreLibreDespuesDeBorrar(t *testing.T) {
	uc, _ := newCategoryUC()
	created := mustCreateCategory(t, uc, "Bebidas")

	require.NoError(t, uc.Delete(created.ID))

	again, err := uc.Create(dto.CreateCategoryRequest{Name: "Bebidas"})
	require.NoError(t, err, "el nombre de una categoría borrada debe poder reusarse")
	assert.NotEqual(t, created.ID, again.ID)
}

// Borrar dos veces no es idempotente: la segunda vez el registro ya no está vivo.
func TestCategory_SegundoBorradoFalla(t *testing.T) {
	uc, _ := newCategoryUC()
	created := mustCreateCategory(t, uc, "Postres")

	require.NoError(t, uc.Delete(created.ID))
	err := uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"el segundo borrado debe fallar con not found")
}

// Restaurar una categoría viva es un no-op exitoso (idempotencia de Restore).
func TestCategory_RestoreSobreVivaEsNoOp(t *testing.T) {
	uc, _ := newCategoryUC()
	created := mustCreateCategory(t, uc, "Sopas")

	out, err := uc.Restore(created.ID)
	require.NoError(t, err)
	assert.Nil(t, out.DeletedAt)

	out, err = uc.Restore(created.ID)
	require.NoError(t, err, "restaurar de nuevo debe seguir siendo exitoso")
	assert.Nil(t, out.DeletedAt)
}

// Restaurar se rechaza si mientras tanto otra categoría viva tomó el nombre.
func TestCategory_RestoreConNombreTomado(t *testing.T) {
	uc, _ := newCategoryUC()
	first := mustCreateCategory(t, uc, "Snacks")
	require.NoError(t, uc.Delete(first.ID))
	mustCreateCategory(t, uc, "snacks")

	_, err := uc.Restore(first.ID)
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"restaurar con el nombre tomado por otra viva debe colisionar")
}

// Invariante de partición: All = Live ∪ Deleted, disjuntos.
func TestCategory_ParticionVivasBorradas(t *testing.T) {
	uc, _ := newCategoryUC()
	a := mustCreateCategory(t, uc, "Desayunos")
	b := mustCreateCategory(t, uc, "Almuerzos")
	mustCreateCategory(t, uc, "Cenas")
	require.NoError(t, uc.Delete(a.ID))
	require.NoError(t, uc.Delete(b.ID))

	live, err := uc.List(entity.VisibilityLive)
	require.NoError(t, err)
	deleted, err := uc.List(entity.VisibilityDeleted)
	require.NoError(t, err)
	all, err := uc.List(entity.VisibilityAll)
	require.NoError(t, err)

	assert.Len(t, live.Categories, 1)
	assert.Len(t, deleted.Categories, 2)
	assert.Len(t, all.Categories, 3)

	seen := map[string]bool{}
	for _, c := range live.Categories {
		assert.Nil(t, c.DeletedAt, "las vivas no llevan deleted_at")
		seen[c.ID] = true
	}
	for _, c := range deleted.Categories {
		assert.NotNil(t, c.DeletedAt, "las borradas llevan deleted_at")
		assert.False(t, seen[c.ID], "vivas y borradas deben ser disjuntas")
		seen[c.ID] = true
	}
	assert.Len(t, seen, len(all.Categories), "all debe ser la unión exacta")
}

// Editar una categoría borrada es not found; editar una viva aplica cambios parciales.
func TestCategory_UpdateSoloSobreVivas(t *testing.T) {
	uc, _ := newCategoryUC()
	created := mustCreateCategory(t, uc, "Ensaladas")

	desc := "frías y templadas"
	out, err := uc.Update(created.ID, dto.UpdateCategoryRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Ensaladas", out.Name, "el nombre no enviado no cambia")
	assert.Equal(t, desc, out.Description)

	require.NoError(t, uc.Delete(created.ID))
	_, err = uc.Update(created.ID, dto.UpdateCategoryRequest{Description: &desc})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"una categoría borrada no es editable")
}

// Renombrar a un nombre tomado por otra categoría viva colisiona; renombrarse
// a sí misma con otra caja no.
func TestCategory_UpdateRenombre(t *testing.T) {
	uc, _ := newCategoryUC()
	a := mustCreateCategory(t, uc, "Jugos")
	mustCreateCategory(t, uc, "Batidos")

	taken := "batidos"
	_, err := uc.Update(a.ID, dto.UpdateCategoryRequest{Name: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	self := "JUGOS"
	out, err := uc.Update(a.ID, dto.UpdateCategoryRequest{Name: &self})
	require.NoError(t, err, "cambiar solo la caja del propio nombre es válido")
	assert.Equal(t, "JUGOS", out.Name)
}

// El nombre se persiste con trim aplicado.
func TestCategory_NombreSePersisteSinEspacios(t *testing.T) {
	uc, _ := newCategoryUC()
	out := mustCreateCategory(t, uc, "  Parrilla  ")
	assert.Equal(t, "Parrilla", out.Name)
}

func TestCategory_GetByIDNoVeBorradas(t *testing.T) {
	uc, _ := newCategoryUC()
	created := mustCreateCategory(t, uc, "Pastas")

	_, err := uc.GetByID(created.ID)
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
