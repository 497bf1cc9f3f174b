package repository

import "github.com/jhoicas/messmate-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
//
// Contratos compartidos por los repositorios del catálogo:
//   - Create retorna domain.ErrDuplicate ante una violación del índice único
//     parcial (carrera entre dos inserts que pasaron el pre-chequeo).
//   - SoftDelete solo aplica sobre registros vivos; si no hay registro vivo con
//     ese ID retorna domain.ErrNotFound (borrar dos veces falla, por contrato).
//   - Restore aplica sin importar el estado; domain.ErrNotFound si el ID no
//     existe, domain.ErrDuplicate si al revivir colisiona con un nombre vivo.
//   - List(v) ordena por fecha de creación; Live y Deleted particionan All.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string, v entity.Visibility) (*entity.Category, error)
	GetLiveByName(name string) (*entity.Category, error)
	List(v entity.Visibility) ([]*entity.Category, error)
	Update(category *entity.Category) error
	SoftDelete(id string) error
	Restore(id string) error
}
