package api

// User is the authenticated barber account.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Cliente is a customer record. The client holds transient copies for
// list and edit display only; the server owns the data.
type Cliente struct {
	ID       int    `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
}

// Servico is a service offering.
type Servico struct {
	ID              int     `json:"id"`
	Nome            string  `json:"nome"`
	Valor           float64 `json:"valor"`
	DuracaoEstimada int     `json:"duracao_estimada"`
	Descricao       string  `json:"descricao"`
	Ativo           bool    `json:"ativo"`
}

// Agendamento links a client, a service and a scheduled timestamp.
// DataHora stays a string: the server emits zone-less ISO timestamps and
// the client treats them opaquely until display time. Cliente and
// Servico are denormalized at fetch time and may be nil when the linked
// record no longer exists.
type Agendamento struct {
	ID          int      `json:"id"`
	ClienteID   int      `json:"cliente_id"`
	ServicoID   int      `json:"servico_id"`
	DataHora    string   `json:"data_hora"`
	Status      string   `json:"status"`
	Observacoes string   `json:"observacoes"`
	Cliente     *Cliente `json:"cliente"`
	Servico     *Servico `json:"servico"`
}

// mutationResponse is the envelope every mutating endpoint returns on
// success. Only the human-readable message is surfaced.
type mutationResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}

// errorResponse is the envelope the server returns on rejection.
type errorResponse struct {
	Error string `json:"error"`
}
