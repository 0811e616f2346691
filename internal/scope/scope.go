// Package scope narrows queries to what a role/identity may see. Services
// derive repository filters here instead of trusting caller-supplied ids.
package scope

import (
	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/pkg/errors"
)

// facilityOf returns the principal's facility affiliation or an unscoped
// error when the role requires one and it is missing.
func facilityOf(p *model.Principal) (uuid.UUID, error) {
	if p.FacilityID == nil {
		return uuid.Nil, errors.Unscoped("no facility affiliation for this account")
	}
	return *p.FacilityID, nil
}

// MyAppointments scopes the "my appointments" listing to the caller.
func MyAppointments(p *model.Principal) (*model.AppointmentFilter, error) {
	switch p.Role {
	case model.RoleClient:
		return &model.AppointmentFilter{ClientID: p.UserID}, nil
	case model.RoleDoctor:
		return &model.AppointmentFilter{DoctorID: p.UserID}, nil
	default:
		return nil, errors.Unscoped("appointments are scoped to clients and doctors")
	}
}

// FacilityAppointments scopes a facility-wide appointment listing. Facility
// admins are pinned to their own facility; only the authority may pass an
// empty facility id, which means all facilities.
func FacilityAppointments(p *model.Principal, facilityID uuid.UUID) (*model.AppointmentFilter, error) {
	switch p.Role {
	case model.RoleFacilityAdmin:
		own, err := facilityOf(p)
		if err != nil {
			return nil, err
		}
		if facilityID != uuid.Nil && facilityID != own {
			return nil, errors.Unscoped("cannot view another facility's appointments")
		}
		return &model.AppointmentFilter{FacilityID: own}, nil
	case model.RoleAuthorityAdmin:
		return &model.AppointmentFilter{FacilityID: facilityID}, nil
	default:
		return nil, errors.Unscoped("facility appointments require an administrative role")
	}
}

// Records scopes medical record reads. Clients see their own records only;
// doctors see records they authored, optionally narrowed to one client.
func Records(p *model.Principal, clientID uuid.UUID) (*model.RecordFilter, error) {
	switch p.Role {
	case model.RoleClient:
		if clientID != uuid.Nil && clientID != p.UserID {
			return nil, errors.Unscoped("cannot view another client's records")
		}
		return &model.RecordFilter{ClientID: p.UserID}, nil
	case model.RoleDoctor:
		return &model.RecordFilter{ClientID: clientID, DoctorID: p.UserID}, nil
	default:
		return nil, errors.Unscoped("medical records are scoped to clients and doctors")
	}
}

// SupplyRequests scopes supply request listings. Facility admins see their
// facility's requests; the authority sees all.
func SupplyRequests(p *model.Principal) (uuid.UUID, error) {
	switch p.Role {
	case model.RoleFacilityAdmin:
		return facilityOf(p)
	case model.RoleAuthorityAdmin:
		return uuid.Nil, nil
	default:
		return uuid.Nil, errors.Unscoped("supply requests require an administrative role")
	}
}

// FacilityFeedback scopes a facility feedback listing.
func FacilityFeedback(p *model.Principal, facilityID uuid.UUID) (uuid.UUID, error) {
	switch p.Role {
	case model.RoleFacilityAdmin:
		own, err := facilityOf(p)
		if err != nil {
			return uuid.Nil, err
		}
		if facilityID != uuid.Nil && facilityID != own {
			return uuid.Nil, errors.Unscoped("cannot view another facility's feedback")
		}
		return own, nil
	case model.RoleAuthorityAdmin:
		if facilityID == uuid.Nil {
			return uuid.Nil, errors.Validation("facility_id is required")
		}
		return facilityID, nil
	default:
		return uuid.Nil, errors.Unscoped("facility feedback requires an administrative role")
	}
}

// Inventory pins inventory access to the caller's facility.
func Inventory(p *model.Principal) (uuid.UUID, error) {
	if p.Role != model.RoleFacilityAdmin {
		return uuid.Nil, errors.Unscoped("inventory is scoped to facility administrators")
	}
	return facilityOf(p)
}

// RequireAuthority gates authority-only operations.
func RequireAuthority(p *model.Principal) error {
	if p.Role != model.RoleAuthorityAdmin {
		return errors.Unscoped("operation requires the authority role")
	}
	return nil
}
