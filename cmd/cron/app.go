package main

import "credits-service/internal/biz"

// CronApp Cron 应用结构
type CronApp struct {
	reconcileUsecase *biz.ReconcileUseCase
}
