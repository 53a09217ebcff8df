package notify

import "fmt"

// Announcement texts per recipient locale. Spanish is the platform default;
// Portuguese covers the Brazilian masters.

type template struct {
	chat  string
	title string
	body  string
}

var templates = map[string]map[string]template{
	"es": {
		"booking_created": {
			chat:  "El cliente solicitó una reserva.",
			title: "Nueva reserva",
			body:  "Tenés una nueva solicitud de reserva #%d.",
		},
		"booking_accepted": {
			chat:  "El profesional aceptó la reserva.",
			title: "Reserva confirmada",
			body:  "Tu reserva #%d fue confirmada por el profesional.",
		},
		"booking_rejected": {
			chat:  "El profesional rechazó la reserva.",
			title: "Reserva rechazada",
			body:  "Tu reserva #%d fue rechazada.",
		},
		"booking_negotiated": {
			chat:  "El profesional propuso un nuevo precio.",
			title: "Nueva propuesta de precio",
			body:  "El profesional propuso un nuevo precio para la reserva #%d.",
		},
		"proposal_accepted": {
			chat:  "El cliente aceptó la propuesta.",
			title: "Propuesta aceptada",
			body:  "El cliente aceptó tu propuesta para la reserva #%d.",
		},
		"work_started": {
			chat:  "El profesional comenzó el trabajo.",
			title: "Trabajo iniciado",
			body:  "El trabajo de la reserva #%d está en curso.",
		},
		"review_requested": {
			chat:  "El profesional terminó y espera tu aprobación.",
			title: "Revisión pendiente",
			body:  "Revisá el trabajo de la reserva #%d y aprobalo.",
		},
		"work_completed": {
			chat:  "El cliente aprobó el trabajo.",
			title: "Trabajo aprobado",
			body:  "El cliente aprobó el trabajo de la reserva #%d.",
		},
		"booking_cancelled": {
			chat:  "La reserva fue cancelada.",
			title: "Reserva cancelada",
			body:  "La reserva #%d fue cancelada.",
		},
		"payment_received": {
			chat:  "Se registró un pago para esta reserva.",
			title: "Pago recibido",
			body:  "Se registró un pago para la reserva #%d.",
		},
		"escrow_released": {
			chat:  "El cliente liberó el pago.",
			title: "Pago liberado",
			body:  "El pago de la reserva #%d fue liberado a tu cuenta.",
		},
	},
	"pt": {
		"booking_created": {
			chat:  "O cliente solicitou uma reserva.",
			title: "Nova reserva",
			body:  "Você tem uma nova solicitação de reserva #%d.",
		},
		"booking_accepted": {
			chat:  "O profissional aceitou a reserva.",
			title: "Reserva confirmada",
			body:  "Sua reserva #%d foi confirmada pelo profissional.",
		},
		"booking_rejected": {
			chat:  "O profissional recusou a reserva.",
			title: "Reserva recusada",
			body:  "Sua reserva #%d foi recusada.",
		},
		"booking_negotiated": {
			chat:  "O profissional propôs um novo preço.",
			title: "Nova proposta de preço",
			body:  "O profissional propôs um novo preço para a reserva #%d.",
		},
		"proposal_accepted": {
			chat:  "O cliente aceitou a proposta.",
			title: "Proposta aceita",
			body:  "O cliente aceitou sua proposta para a reserva #%d.",
		},
		"work_started": {
			chat:  "O profissional começou o trabalho.",
			title: "Trabalho iniciado",
			body:  "O trabalho da reserva #%d está em andamento.",
		},
		"review_requested": {
			chat:  "O profissional terminou e aguarda sua aprovação.",
			title: "Revisão pendente",
			body:  "Revise o trabalho da reserva #%d e aprove.",
		},
		"work_completed": {
			chat:  "O cliente aprovou o trabalho.",
			title: "Trabalho aprovado",
			body:  "O cliente aprovou o trabalho da reserva #%d.",
		},
		"booking_cancelled": {
			chat:  "A reserva foi cancelada.",
			title: "Reserva cancelada",
			body:  "A reserva #%d foi cancelada.",
		},
		"payment_received": {
			chat:  "Um pagamento foi registrado para esta reserva.",
			title: "Pagamento recebido",
			body:  "Um pagamento foi registrado para a reserva #%d.",
		},
		"escrow_released": {
			chat:  "O cliente liberou o pagamento.",
			title: "Pagamento liberado",
			body:  "O pagamento da reserva #%d foi liberado para sua conta.",
		},
	},
}

func resolve(kind, locale string, bookingID uint) (chat, title, body string) {
	byLocale, ok := templates[locale]
	if !ok {
		byLocale = templates["es"]
	}

	t, ok := byLocale[kind]
	if !ok {
		t = template{chat: kind, title: kind, body: "#%d"}
	}

	return t.chat, t.title, fmt.Sprintf(t.body, bookingID)
}
