package model

// Closed enumerations. The string values are the wire/storage values the
// original planning spreadsheets and frontend use, so they stay in Portuguese.

// Discipline is the trade classification of an order or technician.
type Discipline string

const (
	DisciplineMechanical      Discipline = "Mecânica"
	DisciplineElectrical      Discipline = "Elétrica"
	DisciplineInstrumentation Discipline = "Instrumentação"
	DisciplineLubrication     Discipline = "Lubrificação"
	DisciplineUtilities       Discipline = "Utilidades"
	DisciplineEEP             Discipline = "EEP"
)

// Disciplines lists every valid discipline.
var Disciplines = []Discipline{
	DisciplineMechanical,
	DisciplineElectrical,
	DisciplineInstrumentation,
	DisciplineLubrication,
	DisciplineUtilities,
	DisciplineEEP,
}

// OrderType is the kind of maintenance work.
type OrderType string

const (
	OrderTypePreventive  OrderType = "Preventiva"
	OrderTypeCorrective  OrderType = "Corretiva"
	OrderTypeInspection  OrderType = "Inspeção"
	OrderTypeImprovement OrderType = "Melhoria"
)

// OrderStatus is the order lifecycle state.
type OrderStatus string

const (
	OrderStatusPlanned      OrderStatus = "Planejada"
	OrderStatusExecuting    OrderStatus = "Em Execução"
	OrderStatusCompleted    OrderStatus = "Concluída"
	OrderStatusReprogrammed OrderStatus = "Reprogramada"
)

// Priority is the order urgency class.
type Priority string

const (
	PriorityLow      Priority = "Baixa"
	PriorityMedium   Priority = "Média"
	PriorityHigh     Priority = "Alta"
	PriorityCritical Priority = "Crítica"
)

// Shift is a technician's work-schedule cohort.
type Shift string

const (
	ShiftFirst  Shift = "1º Turno"
	ShiftSecond Shift = "2º Turno"
	ShiftThird  Shift = "3º Turno"
	ShiftAdmin  Shift = "Administrativo"
)

// ShutdownStatus is the operational shutdown state.
type ShutdownStatus string

const (
	ShutdownScheduled  ShutdownStatus = "Agendada"
	ShutdownInProgress ShutdownStatus = "Em Curso"
	ShutdownCompleted  ShutdownStatus = "Concluída"
)

// AssetStatus is the industrial asset state.
type AssetStatus string

const (
	AssetOperational   AssetStatus = "Operacional"
	AssetInMaintenance AssetStatus = "Em Manutenção"
	AssetStopped       AssetStatus = "Parado"
)

// WeekDays lists the seven scheduling day names, Monday first.
var WeekDays = []string{"Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado", "Domingo"}

// ValidWeekDay reports whether name is one of the seven day names.
func ValidWeekDay(name string) bool {
	for _, d := range WeekDays {
		if d == name {
			return true
		}
	}
	return false
}

// Enum membership checks. Binding tags cannot express the accented
// multi-word values, so the services validate them explicitly.

func ValidDiscipline(v string) bool {
	for _, d := range Disciplines {
		if string(d) == v {
			return true
		}
	}
	return false
}

func ValidOrderType(v string) bool {
	switch OrderType(v) {
	case OrderTypePreventive, OrderTypeCorrective, OrderTypeInspection, OrderTypeImprovement:
		return true
	}
	return false
}

func ValidOrderStatus(v string) bool {
	switch OrderStatus(v) {
	case OrderStatusPlanned, OrderStatusExecuting, OrderStatusCompleted, OrderStatusReprogrammed:
		return true
	}
	return false
}

func ValidPriority(v string) bool {
	switch Priority(v) {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

func ValidShift(v string) bool {
	switch Shift(v) {
	case ShiftFirst, ShiftSecond, ShiftThird, ShiftAdmin:
		return true
	}
	return false
}

func ValidShutdownStatus(v string) bool {
	switch ShutdownStatus(v) {
	case ShutdownScheduled, ShutdownInProgress, ShutdownCompleted:
		return true
	}
	return false
}

func ValidAssetStatus(v string) bool {
	switch AssetStatus(v) {
	case AssetOperational, AssetInMaintenance, AssetStopped:
		return true
	}
	return false
}
