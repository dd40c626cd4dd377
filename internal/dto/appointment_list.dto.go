package dto

// AppointmentListDTO é a visão de listagem. Nome e telefone crus do
// cliente ficam expostos para o chamador montar o link de mensagem;
// o engine não constrói link nenhum.
type AppointmentListDTO struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Time string `json:"time"`

	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`

	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`

	ClientPreferences string `json:"client_preferences,omitempty"`
	BarberNotes       string `json:"barber_notes,omitempty"`
}
