package whatsapp

// --- Исходящие сообщения Cloud API ---

// TextMessage исходящее текстовое сообщение
type TextMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             TextBody `json:"text"`
}

// TextBody тело текстового сообщения
type TextBody struct {
	Body string `json:"body"`
}

// InteractiveMessage исходящее интерактивное сообщение (list или button)
type InteractiveMessage struct {
	MessagingProduct string      `json:"messaging_product"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Interactive      Interactive `json:"interactive"`
}

// Interactive содержимое интерактивного сообщения
type Interactive struct {
	Type   string  `json:"type"` // "list" или "button"
	Header *Header `json:"header,omitempty"`
	Body   TextContent `json:"body"`
	Footer *TextContent `json:"footer,omitempty"`
	Action Action      `json:"action"`
}

// Header заголовок интерактивного сообщения
type Header struct {
	Type string `json:"type"` // всегда "text"
	Text string `json:"text"`
}

// TextContent текстовый блок интерактивного сообщения
type TextContent struct {
	Text string `json:"text"`
}

// Action действие интерактивного сообщения: либо список секций, либо кнопки
type Action struct {
	Button   string    `json:"button,omitempty"`
	Sections []Section `json:"sections,omitempty"`
	Buttons  []Button  `json:"buttons,omitempty"`
}

// Section секция списка, максимум 10 строк на сообщение
type Section struct {
	Title string `json:"title"`
	Rows  []Row  `json:"rows"`
}

// Row строка списка
type Row struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Button кнопка быстрого ответа, максимум 3 на сообщение
type Button struct {
	Type  string      `json:"type"` // всегда "reply"
	Reply ButtonReply `json:"reply"`
}

// ButtonReply содержимое кнопки
type ButtonReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// --- Входящий вебхук Cloud API ---

// WebhookPayload корневая структура POST-уведомления от Meta
type WebhookPayload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry запись вебхука
type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

// Change изменение внутри записи
type Change struct {
	Field string      `json:"field"`
	Value ChangeValue `json:"value"`
}

// ChangeValue полезная нагрузка изменения
type ChangeValue struct {
	MessagingProduct string            `json:"messaging_product"`
	Messages         []IncomingRaw     `json:"messages"`
	Contacts         []IncomingContact `json:"contacts"`
}

// IncomingContact профиль отправителя
type IncomingContact struct {
	WaID    string `json:"wa_id"`
	Profile struct {
		Name string `json:"name"`
	} `json:"profile"`
}

// IncomingRaw сырое входящее сообщение
type IncomingRaw struct {
	From        string    `json:"from"`
	ID          string    `json:"id"`
	Timestamp   string    `json:"timestamp"`
	Type        string    `json:"type"`
	Text        *TextBody `json:"text,omitempty"`
	Interactive *struct {
		Type        string       `json:"type"`
		ButtonReply *ButtonReply `json:"button_reply,omitempty"`
		ListReply   *ButtonReply `json:"list_reply,omitempty"`
	} `json:"interactive,omitempty"`
}

// IncomingMessage нормализованное входящее сообщение.
// Для текста заполнен Text, для интерактивных ответов - ReplyID/ReplyTitle.
type IncomingMessage struct {
	From       string
	MessageID  string
	Text       string
	ReplyID    string
	ReplyTitle string
}

// ErrorResponse тело ошибки Cloud API
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}
