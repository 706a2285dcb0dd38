package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/darkkaiser/prowl-notify/internal/config"
	"github.com/darkkaiser/prowl-notify/internal/pkg/version"
	applog "github.com/darkkaiser/prowl-notify/pkg/log"
	"github.com/darkkaiser/prowl-notify/pkg/strutil"
	"github.com/darkkaiser/prowl-notify/prowl"
)

const (
	banner = `
  ____                          _   _   _         _    _   __
 |  _ \  _ __  ___  __      __| | | \ | |  ___  | |_ (_) / _| _   _
 | |_) || '__|/ _ \ \ \ /\ / /| | |  \| | / _ \ | __|| || |_ | | | |
 |  __/ | |  | (_) | \ V  V / | | | |\  || (_) || |_ | ||  _|| |_| |
 |_|    |_|   \___/   \_/\_/  |_| |_| \_| \___/  \__||_||_|   \__, |
                                                              |___/  %s
                                                developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

func main() {
	// 커맨드라인 인자 정의 (설정 파일의 값을 덮어씀)
	configFile := flag.String("config", config.DefaultFilename, "설정 파일 경로")
	apiKeys := flag.String("apikeys", "", "알림을 수신할 API 키 목록 (쉼표로 구분)")
	application := flag.String("application", "", "알림을 보내는 애플리케이션 이름")
	event := flag.String("event", "", "알림 제목")
	description := flag.String("description", "", "알림 본문")
	notifyURL := flag.String("url", "", "알림에 첨부할 링크")
	priority := flag.String("priority", "", "알림 우선순위 (VeryLow, Moderate, Normal, High, Emergency 또는 -2 ~ 2)")
	flag.Parse()

	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.LoadWithFile(*configFile)
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 커맨드라인 인자가 지정된 경우 설정 파일의 값을 덮어쓴다.
	if *apiKeys != "" {
		appConfig.Notification.APIKeys = strutil.SplitAndTrim(*apiKeys, ",")
	}
	if *application != "" {
		appConfig.Notification.Application = *application
	}
	if *event != "" {
		appConfig.Notification.Event = *event
	}
	if *description != "" {
		appConfig.Notification.Description = *description
	}
	if *notifyURL != "" {
		appConfig.Notification.URL = *notifyURL
	}
	if *priority != "" {
		// 설정 파일 검증 이후에 덮어쓰는 값이므로 이곳에서 직접 검증한다.
		if _, err := prowl.ParsePriority(*priority); err != nil {
			fmt.Fprintf(os.Stderr, "[FATAL] 우선순위(-priority) 인자가 올바르지 않습니다: %v\n", err)
			os.Exit(1)
		}
		appConfig.Notification.Priority = *priority
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}
	logOpts.Dir = appConfig.Log.Dir

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = appLogCloser.Close() }()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Printf(banner, version.Get().Version)

	// 빌드 정보 출력
	buildInfo := version.Get()
	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("알림 전송 시작")

	if err := run(appConfig); err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("알림 전송 실패")

		fmt.Fprintf(os.Stderr, "[ERROR] 알림 전송에 실패했습니다: %v\n", err)
		os.Exit(1)
	}

	applog.WithComponent("main").Info("알림 전송 완료")
	fmt.Println("알림이 정상적으로 전송되었습니다.")
}

// run 설정값으로 알림을 구성하여 Prowl API 서버로 전송합니다.
func run(appConfig *config.AppConfig) error {
	// 알림 생성 (필드 길이 제약 검증 포함)
	var notificationOpts []prowl.NotificationOption
	if appConfig.Notification.URL != "" {
		notificationOpts = append(notificationOpts, prowl.WithURL(appConfig.Notification.URL))
	}
	if p, ok := appConfig.Notification.ParsedPriority(); ok {
		notificationOpts = append(notificationOpts, prowl.WithPriority(p))
	}

	n, err := prowl.NewNotification(
		appConfig.Notification.APIKeys,
		appConfig.Notification.Application,
		appConfig.Notification.Event,
		appConfig.Notification.Description,
		notificationOpts...,
	)
	if err != nil {
		return err
	}

	// 클라이언트 생성
	var clientOpts []prowl.ClientOption
	if appConfig.HTTP.Endpoint != "" {
		clientOpts = append(clientOpts, prowl.WithEndpoint(appConfig.HTTP.Endpoint))
	}

	client := prowl.NewClient(clientOpts...)

	// 알림 전송 (설정된 타임아웃 내에 완료되어야 함)
	// 타임아웃이 0이면 무제한 대기를 의미합니다.
	ctx := context.Background()
	if timeout := appConfig.HTTP.ParsedTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return client.Send(ctx, n)
}
