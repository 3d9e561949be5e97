package httperr

// mensagens exibidas ao usuário para cada código de negócio
var messages = map[string]string{
	"invalid_request":        "Dados inválidos.",
	"invalid_date":           "Data inválida. Use o formato AAAA-MM-DD.",
	"invalid_time":           "Horário inválido. Escolha um horário entre 08:00 e 19:30.",
	"invalid_status":         "Status inválido.",
	"invalid_transition":     "Mudança de status não permitida.",
	"client_not_found":       "Cliente não encontrado.",
	"service_not_found":      "Serviço não encontrado.",
	"professional_not_found": "Profissional não encontrado.",
	"product_not_found":      "Produto não encontrado.",
	"appointment_not_found":  "Agendamento não encontrado.",
	"missing_client_phone":   "Cliente sem telefone cadastrado.",
	"invalid_plan":           "Plano inválido.",
	"no_subscription":        "Nenhuma assinatura encontrada para este usuário.",
	"referential_conflict":   "Não é possível excluir: existem agendamentos ou transações vinculadas.",

	"invalid_name":         "Informe o nome.",
	"invalid_month":        "Mês inválido.",
	"invalid_year":         "Ano inválido.",
	"invalid_timezone":     "Fuso horário inválido.",
	"invalid_email":        "E-mail inválido.",
	"invalid_email_domain": "O domínio do e-mail informado não parece ser válido.",
	"invalid_credentials":  "E-mail ou senha incorretos.",
	"email_taken":          "Já existe uma conta com este e-mail.",
	"invalid_image":        "Imagem inválida. Envie um arquivo PNG, JPEG ou WebP.",
	"image_too_large":      "Imagem muito grande. O limite é 5 MB.",
	"storage_unavailable":  "Armazenamento de arquivos indisponível.",
	"payment_error":        "Erro ao comunicar com o provedor de pagamento.",
}

// Message devolve a mensagem amigável do código, ou um texto genérico.
func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return "Não foi possível concluir a operação."
}
