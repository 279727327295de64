package main

import (
	"context"
	"time"

	"github.com/storemvp/storemvp/internal/app"
)

func main() {
	application := app.New()
	wait := application.Start()
	<-wait

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx)
}
