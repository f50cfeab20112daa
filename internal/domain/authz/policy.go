// Package authz centraliza la política de autorización por rol. La capa de
// presentación consulta estas funciones en lugar de comparar roles dispersos.
package authz

import "github.com/vinces1leon/inmobiliaria-mye/internal/domain/entity"

// Action identifica una capacidad del sistema.
type Action string

const (
	// ManageUnits edición del maestro de departamentos (crear, editar, eliminar, foto).
	ManageUnits Action = "manage_units"
	// IssueQuotes crear, listar, ver y descargar cotizaciones.
	IssueQuotes Action = "issue_quotes"
	// DeleteQuotes desactivar (soft delete) cotizaciones.
	DeleteQuotes Action = "delete_quotes"
)

// Can decide si un rol puede ejecutar la acción. Los administradores editan el
// maestro de departamentos; los vendedores solo personalizan precio vía descuento.
func Can(role string, action Action) bool {
	switch action {
	case ManageUnits:
		return role == entity.RoleAdmin
	case IssueQuotes, DeleteQuotes:
		return role == entity.RoleAdmin || role == entity.RoleVendedor
	default:
		return false
	}
}
