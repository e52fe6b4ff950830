package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// SendBackupReportEmail envia o relatório de comandas por e-mail (async
// para não segurar o agendador). Requer as variáveis SMTP_* configuradas.
func SendBackupReportEmail(to string, subject string, reportText string) {
	go func() {
		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		if host == "" || from == "" {
			log.Println("SMTP não configurado, e-mail de backup não enviado")
			return
		}

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", subject)
		m.SetBody("text/plain", reportText)

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Erro ao enviar e-mail de backup: %v", err)
		}
	}()
}
