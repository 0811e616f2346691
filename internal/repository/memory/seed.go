package memory

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/healthnet/admin-api/internal/model"
)

// SeedPassword is the credential every seeded account starts with.
const SeedPassword = "password123"

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// seed loads the demo data set the platform ships with: one authority
// admin, two facility admins, three doctors, three clients, three
// facilities, and a spread of appointments, records, supply requests,
// feedback, and inventory across all lifecycle states.
func seed(s *Store) {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	passwordHash := string(hash)

	algiers := uuid.New()
	oran := uuid.New()
	constantine := uuid.New()

	ministry := uuid.New()
	admin1 := uuid.New()
	admin2 := uuid.New()
	drSmith := uuid.New()
	drJones := uuid.New()
	drAlice := uuid.New()
	john := uuid.New()
	jane := uuid.New()
	petra := uuid.New()

	now := time.Now()
	user := func(id uuid.UUID, username, email string, role model.Role, facilityID *uuid.UUID) *model.User {
		return &model.User{
			Base:         model.Base{ID: id, CreatedAt: now, UpdatedAt: now},
			Username:     username,
			Email:        email,
			PasswordHash: passwordHash,
			Role:         role,
			FacilityID:   facilityID,
		}
	}

	s.users = []*model.User{
		user(ministry, "ministryadmin", "ga@example.com", model.RoleAuthorityAdmin, nil),
		user(admin1, "hospitaladmin1", "admin1@example.com", model.RoleFacilityAdmin, &algiers),
		user(admin2, "hospitaladmin2", "admin2@example.com", model.RoleFacilityAdmin, &oran),
		user(drSmith, "drsmith", "dr.smith@example.com", model.RoleDoctor, &algiers),
		user(drJones, "drjones", "dr.jones@example.com", model.RoleDoctor, &algiers),
		user(drAlice, "dralice", "dr.alice@example.com", model.RoleDoctor, &oran),
		user(john, "johndoe", "john.doe@example.com", model.RoleClient, nil),
		user(jane, "janedoe", "jane.doe@example.com", model.RoleClient, nil),
		user(petra, "petra", "petra@example.com", model.RoleClient, nil),
	}

	s.facilities = []*model.Facility{
		{
			Base:         model.Base{ID: algiers, CreatedAt: now, UpdatedAt: now},
			Name:         "Algiers General Hospital",
			Type:         model.FacilityTypeHospital,
			Address:      "123 Hospital St, Algiers",
			Phone:        "021-111222",
			Region:       "Algiers",
			Beds:         300,
			OccupiedBeds: 180,
		},
		{
			Base:         model.Base{ID: oran, CreatedAt: now, UpdatedAt: now},
			Name:         "Oran City Clinic",
			Type:         model.FacilityTypeClinic,
			Address:      "456 Clinic Ave, Oran",
			Phone:        "041-333444",
			Region:       "Oran",
			Beds:         50,
			OccupiedBeds: 30,
		},
		{
			Base:         model.Base{ID: constantine, CreatedAt: now, UpdatedAt: now},
			Name:         "Constantine Health Center",
			Type:         model.FacilityTypeHealthCenter,
			Address:      "789 Health Rd, Constantine",
			Phone:        "031-555666",
			Region:       "Constantine",
			Beds:         10,
			OccupiedBeds: 5,
		},
	}

	appt1 := uuid.New()
	appt3 := uuid.New()
	appointment := func(id uuid.UUID, clientID uuid.UUID, clientName string, doctorID uuid.UUID, doctorName string,
		facilityID uuid.UUID, facilityName string, at, reason string, status model.AppointmentStatus) *model.Appointment {
		return &model.Appointment{
			Base:         model.Base{ID: id, CreatedAt: now, UpdatedAt: now},
			ClientID:     clientID,
			ClientName:   clientName,
			DoctorID:     doctorID,
			DoctorName:   doctorName,
			FacilityID:   facilityID,
			FacilityName: facilityName,
			DateTime:     ts(at),
			Reason:       reason,
			Status:       status,
		}
	}

	s.appointments = []*model.Appointment{
		appointment(appt1, john, "johndoe", drSmith, "drsmith", algiers, "Algiers General Hospital",
			"2024-07-20T10:00:00Z", "Routine check-up", model.AppointmentStatusFinished),
		appointment(uuid.New(), jane, "janedoe", drSmith, "drsmith", algiers, "Algiers General Hospital",
			"2024-07-21T14:30:00Z", "Follow-up on blood pressure", model.AppointmentStatusPending),
		appointment(appt3, john, "johndoe", drAlice, "dralice", oran, "Oran City Clinic",
			"2024-07-15T09:00:00Z", "Annual physical exam", model.AppointmentStatusFinished),
		appointment(uuid.New(), petra, "petra", drJones, "drjones", algiers, "Algiers General Hospital",
			"2024-07-22T11:00:00Z", "Vaccination", model.AppointmentStatusApproved),
		appointment(uuid.New(), petra, "petra", drAlice, "dralice", oran, "Oran City Clinic",
			"2024-07-10T16:00:00Z", "Consultation for rash", model.AppointmentStatusCancelled),
	}

	s.records = []*model.MedicalRecord{
		{
			Base:          model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			ClientID:      john,
			ClientName:    "johndoe",
			DoctorID:      drSmith,
			DoctorName:    "drsmith",
			FacilityID:    algiers,
			FacilityName:  "Algiers General Hospital",
			AppointmentID: &appt1,
			Date:          "2024-07-20",
			Diagnosis:     "Common cold",
			Notes:         "Patient presented with mild fever and cough. Advised rest and hydration.",
			Prescription:  "Paracetamol 500mg, twice daily for 3 days.",
		},
		{
			Base:          model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			ClientID:      john,
			ClientName:    "johndoe",
			DoctorID:      drAlice,
			DoctorName:    "dralice",
			FacilityID:    oran,
			FacilityName:  "Oran City Clinic",
			AppointmentID: &appt3,
			Date:          "2024-07-15",
			Diagnosis:     "Annual check-up, healthy",
			Notes:         "No significant findings. Advised continued healthy lifestyle.",
			Prescription:  "None.",
		},
		{
			Base:         model.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			ClientID:     jane,
			ClientName:   "janedoe",
			DoctorID:     drSmith,
			DoctorName:   "drsmith",
			FacilityID:   algiers,
			FacilityName: "Algiers General Hospital",
			Date:         "2024-06-01",
			Diagnosis:    "Hypertension, controlled",
			Notes:        "Regular blood pressure monitoring. Patient adherence good.",
			Prescription: "Lisinopril 10mg, once daily.",
		},
	}

	approvedAt := ts("2024-06-26T09:00:00Z")
	s.supplies = []*model.SupplyRequest{
		{
			ID:           uuid.New(),
			FacilityID:   algiers,
			FacilityName: "Algiers General Hospital",
			ItemName:     "Surgical Masks",
			Quantity:     5000,
			Status:       model.SupplyStatusPending,
			RequestedAt:  ts("2024-07-01T10:30:00Z"),
		},
		{
			ID:           uuid.New(),
			FacilityID:   algiers,
			FacilityName: "Algiers General Hospital",
			ItemName:     "Hand Sanitizer (1L)",
			Quantity:     100,
			Status:       model.SupplyStatusApproved,
			RequestedAt:  ts("2024-06-25T14:00:00Z"),
			ApprovedAt:   &approvedAt,
		},
		{
			ID:           uuid.New(),
			FacilityID:   oran,
			FacilityName: "Oran City Clinic",
			ItemName:     "Gloves (Box of 100)",
			Quantity:     50,
			Status:       model.SupplyStatusPending,
			RequestedAt:  ts("2024-07-05T09:15:00Z"),
		},
		{
			ID:           uuid.New(),
			FacilityID:   constantine,
			FacilityName: "Constantine Health Center",
			ItemName:     "Painkillers (Tabs)",
			Quantity:     2000,
			Status:       model.SupplyStatusRejected,
			RequestedAt:  ts("2024-06-20T11:00:00Z"),
		},
	}

	s.feedback = []*model.Feedback{
		{ID: uuid.New(), ClientName: "johndoe", FacilityID: algiers, FacilityName: "Algiers General Hospital",
			Rating: 5, Comment: "Excellent service, Dr. Smith was very helpful and knowledgeable!", Date: ts("2024-07-20T11:00:00Z")},
		{ID: uuid.New(), ClientName: "janedoe", FacilityID: algiers, FacilityName: "Algiers General Hospital",
			Rating: 4, Comment: "Waiting time was a bit long, but the staff were friendly.", Date: ts("2024-07-18T15:00:00Z")},
		{ID: uuid.New(), ClientName: "petra", FacilityID: oran, FacilityName: "Oran City Clinic",
			Rating: 5, Comment: "Very clean clinic and efficient service. Highly recommended.", Date: ts("2024-07-16T10:00:00Z")},
		{ID: uuid.New(), ClientName: "johndoe", FacilityID: oran, FacilityName: "Oran City Clinic",
			Rating: 3, Comment: "Doctor was good but parking was difficult to find.", Date: ts("2024-07-15T10:30:00Z")},
		{ID: uuid.New(), ClientName: "janedoe", FacilityID: constantine, FacilityName: "Constantine Health Center",
			Rating: 4, Comment: "Small health center but provided good basic care.", Date: ts("2024-07-12T13:00:00Z")},
	}

	s.inventory = []*model.InventoryItem{
		{ID: uuid.New(), FacilityID: algiers, ItemName: "Surgical Masks", Quantity: 1200, Unit: "pcs", UpdatedAt: now},
		{ID: uuid.New(), FacilityID: algiers, ItemName: "Saline (500ml)", Quantity: 340, Unit: "bags", UpdatedAt: now},
		{ID: uuid.New(), FacilityID: oran, ItemName: "Gloves (Box of 100)", Quantity: 85, Unit: "boxes", UpdatedAt: now},
		{ID: uuid.New(), FacilityID: constantine, ItemName: "Bandages", Quantity: 60, Unit: "rolls", UpdatedAt: now},
	}
}
