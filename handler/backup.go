package handler

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"comanda_manager/config"
	"comanda_manager/store"
	"comanda_manager/utils"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var (
	backupScheduler  gocron.Scheduler
	integritySweeper *cron.Cron
)

// StartBackupScheduler grava diariamente o relatório de comandas em
// backups/ e, se BACKUP_EMAIL_TO estiver configurado, envia por e-mail
func StartBackupScheduler(comandas *store.ComandaStore) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("BRT", -3*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	backupScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(23, 55, 0),
			),
		),
		gocron.NewTask(func() { RunBackup(comandas) }),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Agendador de backup iniciado (23:55 BRT)")
}

func StopBackupScheduler() {
	if backupScheduler != nil {
		backupScheduler.Shutdown()
	}
}

// RunBackup exporta todas as comandas para um arquivo datado
func RunBackup(comandas *store.ComandaStore) {
	report := utils.ExportComandasToText(comandas.List())

	if err := os.MkdirAll("backups", 0o755); err != nil {
		log.Printf("Erro ao criar diretório de backup: %v", err)
		return
	}
	filename := filepath.Join("backups", "comandas_"+time.Now().Format("2006-01-02")+".txt")
	if err := os.WriteFile(filename, []byte(report), 0o644); err != nil {
		log.Printf("Erro ao gravar backup: %v", err)
		return
	}
	log.Printf("Backup das comandas gravado em %s", filename)

	if to := config.Config("BACKUP_EMAIL_TO"); to != "" {
		subject := fmt.Sprintf("Backup de comandas %s", time.Now().Format("02/01/2006"))
		utils.SendBackupReportEmail(to, subject, report)
	}
}

// StartIntegritySweeper confere a cada 5 minutos o invariante do total
// derivado (total == soma das sessões) e corrige divergências
func StartIntegritySweeper(comandas *store.ComandaStore) {
	integritySweeper = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := integritySweeper.AddFunc("*/5 * * * *", func() {
		if healed := comandas.HealTotals(); healed > 0 {
			log.Printf("Totais corrigidos em %d comanda(s)", healed)
		}
	})
	if err != nil {
		log.Printf("Erro ao iniciar verificador de totais: %v", err)
		return
	}

	integritySweeper.Start()
	log.Println("Verificador de totais iniciado (a cada 5 minutos)")
}

func StopIntegritySweeper() {
	if integritySweeper != nil {
		integritySweeper.Stop()
	}
}
