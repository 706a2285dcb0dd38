// Package prowl Prowl 푸시 알림 서비스(https://www.prowlapp.com)의 클라이언트 라이브러리입니다.
//
// 알림(Notification)을 생성할 때 각 필드의 길이 제약을 검증하고,
// 검증된 알림을 단일 HTTP POST 요청으로 Prowl API 서버에 전송합니다.
//
// 기본적인 사용 방법:
//
//	n, err := prowl.NewNotification(
//		[]string{"YOUR_API_KEY"},
//		"MyApp",
//		"배포 완료",
//		"v1.2.3 배포가 정상적으로 완료되었습니다.",
//		prowl.WithPriority(prowl.PriorityHigh),
//	)
//	if err != nil {
//		// 필드 길이 제약 위반 (*prowl.CreationError)
//	}
//
//	client := prowl.NewClient()
//	if err := client.Send(context.Background(), n); err != nil {
//		// 전송 실패 (*prowl.SendError, *prowl.APIError, *prowl.FormatError)
//	}
//
// 라이브러리는 재시도를 수행하지 않으며, 호출당 정확히 한 번의 요청만 전송합니다.
// 타임아웃 역시 라이브러리가 강제하지 않고, 호출자가 전달하는 Context 또는
// 클라이언트 옵션(WithTimeout)에 위임합니다.
package prowl
