package appointment

import (
	"context"
	"sync"
	"time"

	domain "github.com/MobiPetApp/mobipet-server/internal/domain/appointment"
	"github.com/MobiPetApp/mobipet-server/internal/httperr"
	"github.com/MobiPetApp/mobipet-server/internal/models"
	"github.com/MobiPetApp/mobipet-server/internal/notify"
)

// fakeRepo is an in-memory stand-in with the same conditional-update
// semantics as the SQL layer, so the race and CAS paths are exercised for
// real.
type fakeRepo struct {
	mu sync.Mutex

	users        map[uint]models.User
	pets         map[uint]models.Pet
	appointments map[uint]models.Appointment
	proposals    map[uint]models.TimeProposal
	records      map[uint]models.ClinicalRecord

	nextAppointmentID uint
	nextProposalID    uint
	nextRecordID      uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        make(map[uint]models.User),
		pets:         make(map[uint]models.Pet),
		appointments: make(map[uint]models.Appointment),
		proposals:    make(map[uint]models.TimeProposal),
		records:      make(map[uint]models.ClinicalRecord),
	}
}

func (r *fakeRepo) addUser(u models.User) {
	r.users[u.ID] = u
}

func (r *fakeRepo) addPet(p models.Pet) {
	r.pets[p.ID] = p
}

func (r *fakeRepo) addAppointment(ap models.Appointment) {
	if ap.ID == 0 {
		r.nextAppointmentID++
		ap.ID = r.nextAppointmentID
	} else if ap.ID > r.nextAppointmentID {
		r.nextAppointmentID = ap.ID
	}
	r.appointments[ap.ID] = ap
}

func (r *fakeRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, httperr.ErrNotFound("user_not_found", "User not found.")
	}
	return &u, nil
}

func (r *fakeRepo) ListEnabledVets(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.User
	for _, u := range r.users {
		if u.Role == domain.RoleVet && u.IsEnabled {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetPetForOwner(ctx context.Context, petID, ownerID uint) (*models.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pets[petID]
	if !ok || p.OwnerID != ownerID {
		return nil, httperr.ErrNotFound("pet_not_found", "Pet not found.")
	}
	return &p, nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextAppointmentID++
	ap.ID = r.nextAppointmentID
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}
	return &ap, nil
}

func (r *fakeRepo) ListAppointmentsForOwner(ctx context.Context, ownerID uint) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.PetOwnerID == ownerID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForVet(ctx context.Context, vetID uint) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		mine := ap.VetID != nil && *ap.VetID == vetID
		unclaimed := ap.Status == string(domain.StatusWaitingForVet) && ap.VetID == nil
		declinedByMe := ap.DeclinedBy != nil && *ap.DeclinedBy == vetID
		if mine || unclaimed || declinedByMe {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ClaimAppointment(ctx context.Context, appointmentID, vetID uint, now time.Time) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[appointmentID]
	if !ok {
		return nil, httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}

	claimable := ap.Status == string(domain.StatusWaitingForVet) &&
		(ap.VetID == nil || *ap.VetID == vetID)
	if !claimable {
		return nil, httperr.ErrConflict("already_claimed", "This job was just accepted by another vet.")
	}

	ap.VetID = &vetID
	ap.Status = string(domain.StatusConfirmed)
	ap.AcceptedAt = &now
	r.appointments[ap.ID] = ap
	return &ap, nil
}

func (r *fakeRepo) UpdateAppointmentFrom(ctx context.Context, ap *models.Appointment, expected domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.appointments[ap.ID]
	if !ok || stored.Status != string(expected) {
		return httperr.ErrConflict("concurrent_update", "The appointment changed while you were acting on it.")
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) DeleteAppointment(ctx context.Context, appointmentID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[appointmentID]
	if !ok {
		return httperr.ErrNotFound("appointment_not_found", "Appointment not found.")
	}
	if domain.IsTerminal(domain.Status(ap.Status)) {
		return httperr.ErrConflict("concurrent_update", "The appointment changed while you were acting on it.")
	}
	delete(r.appointments, appointmentID)
	for id, p := range r.proposals {
		if p.AppointmentID == appointmentID {
			delete(r.proposals, id)
		}
	}
	return nil
}

func (r *fakeRepo) CreateProposal(ctx context.Context, ap *models.Appointment, p *models.TimeProposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.proposals {
		if existing.AppointmentID == ap.ID && existing.Status == string(domain.ProposalPending) {
			return httperr.ErrConflict("proposal_pending", "A time proposal is already waiting for a response.")
		}
	}

	stored, ok := r.appointments[ap.ID]
	if !ok || stored.Status != string(domain.StatusWaitingForVet) {
		return httperr.ErrConflict("concurrent_update", "The appointment changed while you were acting on it.")
	}

	r.nextProposalID++
	p.ID = r.nextProposalID
	r.proposals[p.ID] = *p
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) GetProposalByID(ctx context.Context, id uint) (*models.TimeProposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.proposals[id]
	if !ok {
		return nil, httperr.ErrNotFound("proposal_not_found", "Time proposal not found.")
	}
	return &p, nil
}

func (r *fakeRepo) ListProposalsForAppointment(ctx context.Context, appointmentID uint) ([]models.TimeProposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.TimeProposal
	for _, p := range r.proposals {
		if p.AppointmentID == appointmentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) SaveProposalResponse(ctx context.Context, ap *models.Appointment, p *models.TimeProposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.proposals[p.ID]
	if !ok || stored.Status != string(domain.ProposalPending) {
		return httperr.ErrNotFound("proposal_not_pending", "This proposal was already answered or withdrawn.")
	}
	storedAp, ok := r.appointments[ap.ID]
	if !ok || storedAp.Status != string(domain.StatusTimeProposed) {
		return httperr.ErrConflict("concurrent_update", "The appointment changed while you were acting on it.")
	}

	r.proposals[p.ID] = *p
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) DeleteProposal(ctx context.Context, ap *models.Appointment, p *models.TimeProposal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.proposals[p.ID]
	if !ok || stored.Status != string(domain.ProposalPending) {
		return httperr.ErrNotFound("proposal_not_pending", "This proposal was already answered or withdrawn.")
	}

	delete(r.proposals, p.ID)
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *fakeRepo) GetClinicalRecordByAppointment(ctx context.Context, appointmentID uint) (*models.ClinicalRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.AppointmentID == appointmentID {
			out := rec
			return &out, nil
		}
	}
	return nil, httperr.ErrNotFound("clinical_record_not_found", "Clinical record not found.")
}

func (r *fakeRepo) SaveClinicalRecord(ctx context.Context, rec *models.ClinicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == 0 {
		r.nextRecordID++
		rec.ID = r.nextRecordID
	}
	r.records[rec.ID] = *rec
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeNotifier records dispatched events synchronously.
type fakeNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *fakeNotifier) Dispatch(ev notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *fakeNotifier) last() (notify.Event, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.events) == 0 {
		return notify.Event{}, false
	}
	return n.events[len(n.events)-1], true
}

type fakeFeed struct {
	mu       sync.Mutex
	statuses []string
}

func (f *fakeFeed) AppointmentChanged(ctx context.Context, appointmentID uint, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, status)
}
