package model

// Choice is a (value, label) pair offered to forms and filters.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ChecklistStatus string

const (
	StatusPending    ChecklistStatus = "pendiente"
	StatusInProgress ChecklistStatus = "en_progreso"
	StatusCompleted  ChecklistStatus = "completado"
	StatusCancelled  ChecklistStatus = "cancelado"
)

var ChecklistStatusChoices = []Choice{
	{string(StatusPending), "Pendiente"},
	{string(StatusInProgress), "En Progreso"},
	{string(StatusCompleted), "Completado"},
	{string(StatusCancelled), "Cancelado"},
}

func (s ChecklistStatus) Valid() bool { return hasChoice(ChecklistStatusChoices, string(s)) }
func (s ChecklistStatus) Label() string {
	return labelOf(ChecklistStatusChoices, string(s))
}

type ChecklistPriority string

const (
	PriorityLow      ChecklistPriority = "baja"
	PriorityMedium   ChecklistPriority = "media"
	PriorityHigh     ChecklistPriority = "alta"
	PriorityCritical ChecklistPriority = "critica"
)

var ChecklistPriorityChoices = []Choice{
	{string(PriorityLow), "Baja"},
	{string(PriorityMedium), "Media"},
	{string(PriorityHigh), "Alta"},
	{string(PriorityCritical), "Crítica"},
}

func (p ChecklistPriority) Valid() bool { return hasChoice(ChecklistPriorityChoices, string(p)) }
func (p ChecklistPriority) Label() string {
	return labelOf(ChecklistPriorityChoices, string(p))
}

type VisitType string

const (
	VisitPreventive VisitType = "preventiva"
	VisitCorrective VisitType = "correctiva"
	VisitFollowUp   VisitType = "seguimiento"
	VisitEmergency  VisitType = "emergencia"
)

var VisitTypeChoices = []Choice{
	{string(VisitPreventive), "Preventiva"},
	{string(VisitCorrective), "Correctiva"},
	{string(VisitFollowUp), "Seguimiento"},
	{string(VisitEmergency), "Emergencia"},
}

func (t VisitType) Valid() bool   { return hasChoice(VisitTypeChoices, string(t)) }
func (t VisitType) Label() string { return labelOf(VisitTypeChoices, string(t)) }

type VisitOutcome string

const (
	OutcomeSatisfactory      VisitOutcome = "satisfactorio"
	OutcomeMinorObservations VisitOutcome = "observaciones_menores"
	OutcomeMajorObservations VisitOutcome = "observaciones_mayores"
	OutcomeCritical          VisitOutcome = "critico"
)

var VisitOutcomeChoices = []Choice{
	{string(OutcomeSatisfactory), "Satisfactorio"},
	{string(OutcomeMinorObservations), "Observaciones Menores"},
	{string(OutcomeMajorObservations), "Observaciones Mayores"},
	{string(OutcomeCritical), "Crítico"},
}

func (o VisitOutcome) Valid() bool   { return hasChoice(VisitOutcomeChoices, string(o)) }
func (o VisitOutcome) Label() string { return labelOf(VisitOutcomeChoices, string(o)) }

func hasChoice(choices []Choice, v string) bool {
	for _, c := range choices {
		if c.Value == v {
			return true
		}
	}
	return false
}

func labelOf(choices []Choice, v string) string {
	for _, c := range choices {
		if c.Value == v {
			return c.Label
		}
	}
	return v
}
