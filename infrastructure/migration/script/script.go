package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-performance-api/infrastructure/dataset"
	"github.com/vfg2006/sales-performance-api/infrastructure/migration"
	"github.com/vfg2006/sales-performance-api/internal/config"
)

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func main() {
	input := flag.String("input", "", "Arquivo JSON com sellers, products e purchase_records")
	schemaOnly := flag.Bool("schema-only", false, "Apenas cria as tabelas, sem carregar dados")
	flag.Parse()

	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx := context.Background()

	logrus.Info("Conectando ao banco de dados...")
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	if err := migration.CreateSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar schema")
	}
	logrus.Info("Schema de vendas criado")

	if *schemaOnly {
		return
	}

	if *input == "" {
		logrus.Fatal("Informe o dataset com -input")
	}

	data, err := dataset.LoadFile(*input)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar dataset")
	}

	if _, err := migration.Seed(ctx, conn, data); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar dataset no banco")
	}
}
