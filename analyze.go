package crossplane

import (
	"fmt"
	"strings"
)

// bit masks for different directive argument styles
const (
	NGXConfNoArgs = 0x00000001 // 0 args
	NGXConfTake1  = 0x00000002 // 1 arg
	NGXConfTake2  = 0x00000004 // 2 args
	NGXConfTake3  = 0x00000008 // 3 args
	NGXConfTake4  = 0x00000010 // 4 args
	NGXConfTake5  = 0x00000020 // 5 args
	NGXConfTake6  = 0x00000040 // 6 args
	NGXConfTake7  = 0x00000080 // 7 args
	NGXConfBlock  = 0x00000100 // followed by block
	NGXConfFlag   = 0x00000200 // 'on' or 'off'
	NGXConfAny    = 0x00000400 // >=0 args
	NGXConf1More  = 0x00000800 // >=1 args
	NGXConf2More  = 0x00001000 // >=2 args

	// some helpful argument style aliases
	NGXConfTake12   = NGXConfTake1 | NGXConfTake2
	NGXConfTake13   = NGXConfTake1 | NGXConfTake3
	NGXConfTake23   = NGXConfTake2 | NGXConfTake3
	NGXConfTake123  = NGXConfTake12 | NGXConfTake3
	NGXConfTake1234 = NGXConfTake123 | NGXConfTake4

	// bit masks for different directive locations
	NGXDirectConf     = 0x00010000 // main file (not used)
	NGXMainConf       = 0x00040000 // main context
	NGXEventConf      = 0x00080000 // events
	NGXMailMainConf   = 0x00100000 // mail
	NGXMailSrvConf    = 0x00200000 // mail > server
	NGXStreamMainConf = 0x00400000 // stream
	NGXStreamSrvConf  = 0x00800000 // stream > server
	NGXStreamUpsConf  = 0x01000000 // stream > upstream
	NGXHTTPMainConf   = 0x02000000 // http
	NGXHTTPSrvConf    = 0x04000000 // http > server
	NGXHTTPLocConf    = 0x08000000 // http > location
	NGXHTTPUpsConf    = 0x10000000 // http > upstream
	NGXHTTPSifConf    = 0x20000000 // http > server > if
	NGXHTTPLifConf    = 0x40000000 // http > location > if
	NGXHTTPLmtConf    = 0x80000000 // http > location > limit_except

	NGXAnyConf = NGXMainConf | NGXEventConf | NGXMailMainConf | NGXMailSrvConf |
		NGXStreamMainConf | NGXStreamSrvConf | NGXStreamUpsConf |
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPUpsConf
)

// directives maps each known directive name to every legal combination of
// argument style and context it may appear in. A name maps to more than one
// mask when the grammar differs between contexts (e.g. access_log under
// http vs stream). Read-only after process start.
var directives = map[string][]uint{
	"absolute_redirect": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"accept_mutex": {
		NGXEventConf | NGXConfFlag},
	"accept_mutex_delay": {
		NGXEventConf | NGXConfTake1},
	"access_log": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXHTTPLmtConf | NGXConf1More,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConf1More},
	"add_after_body": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"add_before_body": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"add_header": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfTake23},
	"add_trailer": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfTake23},
	"addition_types": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"aio": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"aio_write": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"alias": {
		NGXHTTPLocConf | NGXConfTake1},
	"allow": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLmtConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"ancient_browser": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"ancient_browser_value": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"auth_basic": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLmtConf | NGXConfTake1},
	"auth_basic_user_file": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLmtConf | NGXConfTake1},
	"auth_http": {
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1},
	"auth_http_header": {
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake2},
	"auth_http_pass_client_cert": {
		NGXMailMainConf | NGXMailSrvConf | NGXConfFlag},
	"auth_http_timeout": {
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1},
	"auth_request": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"auth_request_set": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake2},
	"autoindex": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"autoindex_exact_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"autoindex_format": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"autoindex_localtime": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"break": {
		NGXHTTPSrvConf | NGXHTTPSifConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfNoArgs},
	"charset": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfTake1},
	"charset_map": {
		NGXHTTPMainConf | NGXConfBlock | NGXConfTake2},
	"charset_types": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"chunked_transfer_encoding": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"client_body_buffer_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"client_body_in_file_only": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"client_body_in_single_buffer": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"client_body_temp_path": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1234},
	"client_body_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"client_header_buffer_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1},
	"client_header_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1},
	"client_max_body_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"connection_pool_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1},
	"create_full_put_path": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"daemon": {
		NGXMainConf | NGXDirectConf | NGXConfFlag},
	"dav_access": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake123},
	"dav_methods": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"debug_connection": {
		NGXEventConf | NGXConfTake1},
	"debug_points": {
		NGXMainConf | NGXDirectConf | NGXConfTake1},
	"default_type": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"deny": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLmtConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"directio": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"directio_alignment": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"disable_symlinks": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake12},
	"empty_gif": {
		NGXHTTPLocConf | NGXConfNoArgs},
	"env": {
		NGXMainConf | NGXDirectConf | NGXConfTake1},
	"error_log": {
		NGXMainConf | NGXConf1More,
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More,
		NGXMailMainConf | NGXMailSrvConf | NGXConf1More,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConf1More},
	"error_page": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConf2More},
	"etag": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"events": {
		NGXMainConf | NGXConfBlock | NGXConfNoArgs},
	"expires": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfTake12},
	"fastcgi_bind": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake12},
	"fastcgi_buffer_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_buffering": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"fastcgi_buffers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake2},
	"fastcgi_busy_buffers_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_cache": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_cache_background_update": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"fastcgi_cache_bypass": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"fastcgi_cache_key": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_cache_lock": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"fastcgi_cache_lock_age": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_cache_lock_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_cache_max_range_offset": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_cache_methods": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"fastcgi_cache_min_uses": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_cache_path": {
		NGXHTTPMainConf | NGXConf2More},
	"fastcgi_cache_revalidate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"fastcgi_cache_use_stale": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"fastcgi_cache_valid": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"fastcgi_catch_stderr": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_connect_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_force_ranges": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"fastcgi_hide_header": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_ignore_client_abort": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"fastcgi_ignore_headers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"fastcgi_index": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_intercept_errors": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"fastcgi_keep_conn": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"fastcgi_limit_rate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_max_temp_file_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_next_upstream": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"fastcgi_next_upstream_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_next_upstream_tries": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_no_cache": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"fastcgi_param": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake23},
	"fastcgi_pass": {
		NGXHTTPLocConf | NGXHTTPLifConf | NGXConfTake1},
	"fastcgi_pass_header": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_pass_request_body": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"fastcgi_pass_request_headers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"fastcgi_read_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_request_buffering": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"fastcgi_send_lowat": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_send_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_socket_keepalive": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"fastcgi_split_path_info": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_store": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_store_access": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake123},
	"fastcgi_temp_file_write_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_temp_path": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1234},
	"flv": {
		NGXHTTPLocConf | NGXConfNoArgs},
	"geo": {
		NGXHTTPMainConf | NGXConfBlock | NGXConfTake12,
		NGXStreamMainConf | NGXConfBlock | NGXConfTake12},
	"geoip_city": {
		NGXHTTPMainConf | NGXConfTake12,
		NGXStreamMainConf | NGXConfTake12},
	"geoip_country": {
		NGXHTTPMainConf | NGXConfTake12,
		NGXStreamMainConf | NGXConfTake12},
	"geoip_org": {
		NGXHTTPMainConf | NGXConfTake12,
		NGXStreamMainConf | NGXConfTake12},
	"geoip_proxy": {
		NGXHTTPMainConf | NGXConfTake1},
	"geoip_proxy_recursive": {
		NGXHTTPMainConf | NGXConfFlag},
	"google_perftools_profiles": {
		NGXMainConf | NGXDirectConf | NGXConfTake1},
	"grpc_bind": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake12},
	"grpc_buffer_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"grpc_connect_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"grpc_hide_header": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"grpc_ignore_headers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"grpc_intercept_errors": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"grpc_next_upstream": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"grpc_next_upstream_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"grpc_next_upstream_tries": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"grpc_pass": {
		NGXHTTPLocConf | NGXHTTPLifConf | NGXConfTake1},
	"grpc_pass_header": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"grpc_read_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"grpc_send_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"grpc_set_header": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake2},
	"grpc_socket_keepalive": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"grpc_ssl_certificate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"grpc_ssl_certificate_key": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"grpc_ssl_ciphers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"grpc_ssl_crl": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"grpc_ssl_name": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"grpc_ssl_password_file": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"grpc_ssl_protocols": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"grpc_ssl_server_name": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"grpc_ssl_session_reuse": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"grpc_ssl_trusted_certificate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"grpc_ssl_verify": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"grpc_ssl_verify_depth": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"gunzip": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"gunzip_buffers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake2},
	"gzip": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfFlag},
	"gzip_buffers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake2},
	"gzip_comp_level": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"gzip_disable": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"gzip_http_version": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"gzip_min_length": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"gzip_proxied": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"gzip_static": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"gzip_types": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"gzip_vary": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"hash": {
		NGXHTTPUpsConf | NGXConfTake12,
		NGXStreamUpsConf | NGXConfTake12},
	"http": {
		NGXMainConf | NGXConfBlock | NGXConfNoArgs},
	"http2_body_preread_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1},
	"http2_chunk_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"http2_idle_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1},
	"http2_max_concurrent_pushes": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1},
	"http2_max_concurrent_streams": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1},
	"http2_max_field_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1},
	"http2_max_header_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1},
	"http2_max_requests": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1},
	"http2_push": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"http2_push_preload": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"http2_recv_buffer_size": {
		NGXHTTPMainConf | NGXConfTake1},
	"http2_recv_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1},
	"if": {
		NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfBlock | NGXConf1More},
	"if_modified_since": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"ignore_invalid_headers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfFlag},
	"image_filter": {
		NGXHTTPLocConf | NGXConfTake123},
	"image_filter_buffer": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"image_filter_interlace": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"image_filter_jpeg_quality": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"image_filter_sharpen": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"image_filter_transparency": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"image_filter_webp_quality": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"imap_auth": {
		NGXMailMainConf | NGXMailSrvConf | NGXConf1More},
	"imap_capabilities": {
		NGXMailMainConf | NGXMailSrvConf | NGXConf1More},
	"imap_client_buffer": {
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1},
	"include": {
		NGXAnyConf | NGXConfTake1},
	"index": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"internal": {
		NGXHTTPLocConf | NGXConfNoArgs},
	"ip_hash": {
		NGXHTTPUpsConf | NGXConfNoArgs},
	"keepalive": {
		NGXHTTPUpsConf | NGXConfTake1},
	"keepalive_disable": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake12},
	"keepalive_requests": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1,
		NGXHTTPUpsConf | NGXConfTake1},
	"keepalive_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake12,
		NGXHTTPUpsConf | NGXConfTake1},
	"large_client_header_buffers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake2},
	"least_conn": {
		NGXHTTPUpsConf | NGXConfNoArgs,
		NGXStreamUpsConf | NGXConfNoArgs},
	"limit_conn": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake2,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake2},
	"limit_conn_log_level": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"limit_conn_status": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"limit_conn_zone": {
		NGXHTTPMainConf | NGXConfTake2,
		NGXStreamMainConf | NGXConfTake2},
	"limit_except": {
		NGXHTTPLocConf | NGXConfBlock | NGXConf1More},
	"limit_rate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfTake1},
	"limit_rate_after": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfTake1},
	"limit_req": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake123},
	"limit_req_log_level": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"limit_req_status": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"limit_req_zone": {
		NGXHTTPMainConf | NGXConfTake3},
	"lingering_close": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"lingering_time": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"lingering_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"listen": {
		NGXHTTPSrvConf | NGXConf1More,
		NGXMailSrvConf | NGXConf1More,
		NGXStreamSrvConf | NGXConf1More},
	"load_module": {
		NGXMainConf | NGXDirectConf | NGXConfTake1},
	"location": {
		NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfBlock | NGXConfTake12},
	"lock_file": {
		NGXMainConf | NGXDirectConf | NGXConfTake1},
	"log_format": {
		NGXHTTPMainConf | NGXConf2More,
		NGXStreamMainConf | NGXConf2More},
	"log_not_found": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"log_subrequest": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"mail": {
		NGXMainConf | NGXConfBlock | NGXConfNoArgs},
	"map": {
		NGXHTTPMainConf | NGXConfBlock | NGXConfTake2,
		NGXStreamMainConf | NGXConfBlock | NGXConfTake2},
	"map_hash_bucket_size": {
		NGXHTTPMainConf | NGXConfTake1,
		NGXStreamMainConf | NGXConfTake1},
	"map_hash_max_size": {
		NGXHTTPMainConf | NGXConfTake1,
		NGXStreamMainConf | NGXConfTake1},
	"master_process": {
		NGXMainConf | NGXDirectConf | NGXConfFlag},
	"max_ranges": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"memcached_bind": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake12},
	"memcached_buffer_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"memcached_connect_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"memcached_gzip_flag": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"memcached_next_upstream": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"memcached_next_upstream_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"memcached_next_upstream_tries": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"memcached_pass": {
		NGXHTTPLocConf | NGXHTTPLifConf | NGXConfTake1},
	"memcached_read_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"memcached_send_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"memcached_socket_keepalive": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"merge_slashes": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfFlag},
	"min_delete_depth": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"mirror": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"mirror_request_body": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"modern_browser": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake12},
	"modern_browser_value": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"mp4": {
		NGXHTTPLocConf | NGXConfNoArgs},
	"mp4_buffer_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"mp4_max_buffer_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"msie_padding": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"msie_refresh": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"multi_accept": {
		NGXEventConf | NGXConfFlag},
	"open_file_cache": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake12},
	"open_file_cache_errors": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"open_file_cache_min_uses": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"open_file_cache_valid": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"open_log_file_cache": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1234,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1234},
	"output_buffers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake2},
	"override_charset": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfFlag},
	"pcre_jit": {
		NGXMainConf | NGXDirectConf | NGXConfFlag},
	"perl": {
		NGXHTTPLocConf | NGXHTTPLmtConf | NGXConfTake1},
	"perl_modules": {
		NGXHTTPMainConf | NGXConfTake1},
	"perl_require": {
		NGXHTTPMainConf | NGXConfTake1},
	"perl_set": {
		NGXHTTPMainConf | NGXConfTake2},
	"pid": {
		NGXMainConf | NGXDirectConf | NGXConfTake1},
	"pop3_auth": {
		NGXMailMainConf | NGXMailSrvConf | NGXConf1More},
	"pop3_capabilities": {
		NGXMailMainConf | NGXMailSrvConf | NGXConf1More},
	"port_in_redirect": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"postpone_output": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"preread_buffer_size": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"preread_timeout": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"protocol": {
		NGXMailSrvConf | NGXConfTake1},
	"proxy_bind": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake12,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake12},
	"proxy_buffer": {
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1},
	"proxy_buffer_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"proxy_buffering": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"proxy_buffers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake2},
	"proxy_busy_buffers_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_cache": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_cache_background_update": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"proxy_cache_bypass": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"proxy_cache_convert_head": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"proxy_cache_key": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_cache_lock": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"proxy_cache_lock_age": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_cache_lock_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_cache_max_range_offset": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_cache_methods": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"proxy_cache_min_uses": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_cache_path": {
		NGXHTTPMainConf | NGXConf2More},
	"proxy_cache_revalidate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"proxy_cache_use_stale": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"proxy_cache_valid": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"proxy_connect_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"proxy_cookie_domain": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake12},
	"proxy_cookie_path": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake12},
	"proxy_download_rate": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"proxy_force_ranges": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"proxy_headers_hash_bucket_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_headers_hash_max_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_hide_header": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_http_version": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_ignore_client_abort": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"proxy_ignore_headers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"proxy_intercept_errors": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"proxy_limit_rate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_max_temp_file_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_method": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_next_upstream": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfFlag},
	"proxy_next_upstream_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"proxy_next_upstream_tries": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"proxy_no_cache": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"proxy_pass": {
		NGXHTTPLocConf | NGXHTTPLifConf | NGXHTTPLmtConf | NGXConfTake1,
		NGXStreamSrvConf | NGXConfTake1},
	"proxy_pass_error_message": {
		NGXMailMainConf | NGXMailSrvConf | NGXConfFlag},
	"proxy_pass_header": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_pass_request_body": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"proxy_pass_request_headers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"proxy_protocol": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfFlag},
	"proxy_protocol_timeout": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"proxy_read_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_redirect": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake12},
	"proxy_request_buffering": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"proxy_requests": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"proxy_responses": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"proxy_send_lowat": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_send_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_set_body": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_set_header": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake2},
	"proxy_socket_keepalive": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfFlag},
	"proxy_ssl": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfFlag},
	"proxy_ssl_certificate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"proxy_ssl_certificate_key": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"proxy_ssl_ciphers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"proxy_ssl_crl": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"proxy_ssl_name": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"proxy_ssl_password_file": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"proxy_ssl_protocols": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConf1More},
	"proxy_ssl_server_name": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfFlag},
	"proxy_ssl_session_reuse": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfFlag},
	"proxy_ssl_trusted_certificate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"proxy_ssl_verify": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfFlag},
	"proxy_ssl_verify_depth": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"proxy_store": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_store_access": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake123},
	"proxy_temp_file_write_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"proxy_temp_path": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1234},
	"proxy_timeout": {
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"proxy_upload_rate": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"random": {
		NGXHTTPUpsConf | NGXConfNoArgs | NGXConfTake12,
		NGXStreamUpsConf | NGXConfNoArgs | NGXConfTake12},
	"random_index": {
		NGXHTTPLocConf | NGXConfFlag},
	"read_ahead": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"real_ip_header": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"real_ip_recursive": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"recursive_error_pages": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"referer_hash_bucket_size": {
		NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"referer_hash_max_size": {
		NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"request_pool_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1},
	"reset_timedout_connection": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"resolver": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More,
		NGXMailMainConf | NGXMailSrvConf | NGXConf1More,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConf1More},
	"resolver_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1,
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"return": {
		NGXHTTPSrvConf | NGXHTTPSifConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfTake12,
		NGXStreamSrvConf | NGXConfTake1},
	"rewrite": {
		NGXHTTPSrvConf | NGXHTTPSifConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfTake23},
	"rewrite_log": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPSifConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfFlag},
	"root": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfTake1},
	"satisfy": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_bind": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake12},
	"scgi_buffer_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_buffering": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"scgi_buffers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake2},
	"scgi_busy_buffers_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_cache": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_cache_background_update": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"scgi_cache_bypass": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"scgi_cache_key": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_cache_lock": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"scgi_cache_lock_age": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_cache_lock_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_cache_max_range_offset": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_cache_methods": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"scgi_cache_min_uses": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_cache_path": {
		NGXHTTPMainConf | NGXConf2More},
	"scgi_cache_revalidate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"scgi_cache_use_stale": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"scgi_cache_valid": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"scgi_connect_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_force_ranges": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"scgi_hide_header": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_ignore_client_abort": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"scgi_ignore_headers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"scgi_intercept_errors": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"scgi_limit_rate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_max_temp_file_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_next_upstream": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"scgi_next_upstream_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_next_upstream_tries": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_no_cache": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"scgi_param": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake23},
	"scgi_pass": {
		NGXHTTPLocConf | NGXHTTPLifConf | NGXConfTake1},
	"scgi_pass_header": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_pass_request_body": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"scgi_pass_request_headers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"scgi_read_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_request_buffering": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"scgi_send_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_socket_keepalive": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"scgi_store": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_store_access": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake123},
	"scgi_temp_file_write_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"scgi_temp_path": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1234},
	"secure_link": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"secure_link_md5": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"secure_link_secret": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"send_lowat": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"send_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"sendfile": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfFlag},
	"sendfile_max_chunk": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"server": {
		NGXHTTPMainConf | NGXConfBlock | NGXConfNoArgs,
		NGXHTTPUpsConf | NGXConf1More,
		NGXMailMainConf | NGXConfBlock | NGXConfNoArgs,
		NGXStreamMainConf | NGXConfBlock | NGXConfNoArgs,
		NGXStreamUpsConf | NGXConf1More},
	"server_name": {
		NGXHTTPSrvConf | NGXConf1More,
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1},
	"server_name_in_redirect": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"server_names_hash_bucket_size": {
		NGXHTTPMainConf | NGXConfTake1},
	"server_names_hash_max_size": {
		NGXHTTPMainConf | NGXConfTake1},
	"server_tokens": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"set": {
		NGXHTTPSrvConf | NGXHTTPSifConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfTake2},
	"set_real_ip_from": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"slice": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"smtp_auth": {
		NGXMailMainConf | NGXMailSrvConf | NGXConf1More},
	"smtp_capabilities": {
		NGXMailMainConf | NGXMailSrvConf | NGXConf1More},
	"smtp_client_buffer": {
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1},
	"smtp_greeting_delay": {
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1},
	"source_charset": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfTake1},
	"spdy_chunk_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"spdy_headers_comp": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1},
	"split_clients": {
		NGXHTTPMainConf | NGXConfBlock | NGXConfTake2,
		NGXStreamMainConf | NGXConfBlock | NGXConfTake2},
	"ssi": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfFlag},
	"ssi_last_modified": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"ssi_min_file_chunk": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"ssi_silent_errors": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"ssi_types": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"ssi_value_length": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"ssl": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfFlag,
		NGXMailMainConf | NGXMailSrvConf | NGXConfFlag},
	"ssl_buffer_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1},
	"ssl_certificate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1,
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"ssl_certificate_key": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1,
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"ssl_ciphers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1,
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"ssl_client_certificate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1,
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"ssl_crl": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1,
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"ssl_dhparam": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1,
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"ssl_early_data": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfFlag},
	"ssl_ecdh_curve": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1,
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"ssl_engine": {
		NGXMainConf | NGXDirectConf | NGXConfTake1},
	"ssl_handshake_timeout": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"ssl_password_file": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1,
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"ssl_prefer_server_ciphers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfFlag,
		NGXMailMainConf | NGXMailSrvConf | NGXConfFlag,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfFlag},
	"ssl_preread": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfFlag},
	"ssl_protocols": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConf1More,
		NGXMailMainConf | NGXMailSrvConf | NGXConf1More,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConf1More},
	"ssl_session_cache": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake12,
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake12,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake12},
	"ssl_session_ticket_key": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1,
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"ssl_session_tickets": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfFlag,
		NGXMailMainConf | NGXMailSrvConf | NGXConfFlag,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfFlag},
	"ssl_session_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1,
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"ssl_stapling": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfFlag},
	"ssl_stapling_file": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1},
	"ssl_stapling_responder": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1},
	"ssl_stapling_verify": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfFlag},
	"ssl_trusted_certificate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1,
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"ssl_verify_client": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1,
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"ssl_verify_depth": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfTake1,
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"starttls": {
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1},
	"stream": {
		NGXMainConf | NGXConfBlock | NGXConfNoArgs},
	"stub_status": {
		NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfNoArgs | NGXConfTake1},
	"sub_filter": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake2},
	"sub_filter_last_modified": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"sub_filter_once": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"sub_filter_types": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"subrequest_output_buffer_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"tcp_nodelay": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag,
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfFlag},
	"tcp_nopush": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"thread_pool": {
		NGXMainConf | NGXDirectConf | NGXConfTake23},
	"timeout": {
		NGXMailMainConf | NGXMailSrvConf | NGXConfTake1},
	"timer_resolution": {
		NGXMainConf | NGXDirectConf | NGXConfTake1},
	"try_files": {
		NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf2More},
	"types": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfBlock | NGXConfNoArgs},
	"types_hash_bucket_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"types_hash_max_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"underscores_in_headers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXConfFlag},
	"uninitialized_variable_warn": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPSifConf | NGXHTTPLocConf | NGXHTTPLifConf | NGXConfFlag},
	"upstream": {
		NGXHTTPMainConf | NGXConfBlock | NGXConfTake1,
		NGXStreamMainConf | NGXConfBlock | NGXConfTake1},
	"use": {
		NGXEventConf | NGXConfTake1},
	"user": {
		NGXMainConf | NGXDirectConf | NGXConfTake12},
	"userid": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"userid_domain": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"userid_expires": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"userid_mark": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"userid_name": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"userid_p3p": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"userid_path": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"userid_service": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_bind": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake12},
	"uwsgi_buffer_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_buffering": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"uwsgi_buffers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake2},
	"uwsgi_busy_buffers_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_cache": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_cache_background_update": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_cache_bypass": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"uwsgi_cache_key": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_cache_lock": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"uwsgi_cache_lock_age": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_cache_lock_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_cache_max_range_offset": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_cache_methods": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"uwsgi_cache_min_uses": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_cache_path": {
		NGXHTTPMainConf | NGXConf2More},
	"uwsgi_cache_revalidate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"uwsgi_cache_use_stale": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"uwsgi_cache_valid": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"uwsgi_connect_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_force_ranges": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"uwsgi_hide_header": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_ignore_client_abort": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"uwsgi_ignore_headers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"uwsgi_intercept_errors": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"uwsgi_limit_rate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_max_temp_file_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_modifier1": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_modifier2": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_next_upstream": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"uwsgi_next_upstream_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_next_upstream_tries": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_no_cache": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"uwsgi_param": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake23},
	"uwsgi_pass": {
		NGXHTTPLocConf | NGXHTTPLifConf | NGXConfTake1},
	"uwsgi_pass_header": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_pass_request_body": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"uwsgi_pass_request_headers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"uwsgi_read_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_request_buffering": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"uwsgi_send_timeout": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_socket_keepalive": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"uwsgi_ssl_certificate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_ssl_certificate_key": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_ssl_ciphers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_ssl_crl": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_ssl_name": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_ssl_password_file": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_ssl_protocols": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"uwsgi_ssl_server_name": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"uwsgi_ssl_session_reuse": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"uwsgi_ssl_trusted_certificate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_ssl_verify": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"uwsgi_ssl_verify_depth": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_store": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_store_access": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake123},
	"uwsgi_temp_file_write_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"uwsgi_temp_path": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1234},
	"valid_referers": {
		NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"variables_hash_bucket_size": {
		NGXHTTPMainConf | NGXConfTake1,
		NGXStreamMainConf | NGXConfTake1},
	"variables_hash_max_size": {
		NGXHTTPMainConf | NGXConfTake1,
		NGXStreamMainConf | NGXConfTake1},
	"worker_aio_requests": {
		NGXEventConf | NGXConfTake1},
	"worker_connections": {
		NGXEventConf | NGXConfTake1},
	"worker_cpu_affinity": {
		NGXMainConf | NGXDirectConf | NGXConf1More},
	"worker_priority": {
		NGXMainConf | NGXDirectConf | NGXConfTake1},
	"worker_processes": {
		NGXMainConf | NGXDirectConf | NGXConfTake1},
	"worker_rlimit_core": {
		NGXMainConf | NGXDirectConf | NGXConfTake1},
	"worker_rlimit_nofile": {
		NGXMainConf | NGXDirectConf | NGXConfTake1},
	"worker_shutdown_timeout": {
		NGXMainConf | NGXDirectConf | NGXConfTake1},
	"working_directory": {
		NGXMainConf | NGXDirectConf | NGXConfTake1},
	"xclient": {
		NGXMailMainConf | NGXMailSrvConf | NGXConfFlag},
	"xml_entities": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"xslt_last_modified": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"xslt_param": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake2},
	"xslt_string_param": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake2},
	"xslt_stylesheet": {
		NGXHTTPLocConf | NGXConf1More},
	"xslt_types": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"zone": {
		NGXHTTPUpsConf | NGXConfTake12,
		NGXStreamUpsConf | NGXConfTake12},

	// nginx+ directives [definitions inferred from docs]
	"api": {
		NGXHTTPLocConf | NGXConfNoArgs | NGXConfTake1},
	"auth_jwt": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake12},
	"auth_jwt_claim_set": {
		NGXHTTPMainConf | NGXConf2More},
	"auth_jwt_header_set": {
		NGXHTTPMainConf | NGXConf2More},
	"auth_jwt_key_file": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"auth_jwt_key_request": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"auth_jwt_leeway": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"f4f": {
		NGXHTTPLocConf | NGXConfNoArgs},
	"f4f_buffer_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"fastcgi_cache_purge": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"health_check": {
		NGXHTTPLocConf | NGXConfAny,
		NGXStreamSrvConf | NGXConfAny},
	"health_check_timeout": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"hls": {
		NGXHTTPLocConf | NGXConfNoArgs},
	"hls_buffers": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake2},
	"hls_forward_args": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"hls_fragment": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"hls_mp4_buffer_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"hls_mp4_max_buffer_size": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"js_access": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"js_content": {
		NGXHTTPLocConf | NGXHTTPLmtConf | NGXConfTake1},
	"js_filter": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"js_include": {
		NGXHTTPMainConf | NGXConfTake1,
		NGXStreamMainConf | NGXConfTake1},
	"js_path": {
		NGXHTTPMainConf | NGXConfTake1},
	"js_preread": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"js_set": {
		NGXHTTPMainConf | NGXConfTake2,
		NGXStreamMainConf | NGXConfTake2},
	"keyval": {
		NGXHTTPMainConf | NGXConfTake3,
		NGXStreamMainConf | NGXConfTake3},
	"keyval_zone": {
		NGXHTTPMainConf | NGXConf1More,
		NGXStreamMainConf | NGXConf1More},
	"least_time": {
		NGXHTTPUpsConf | NGXConfTake12,
		NGXStreamUpsConf | NGXConfTake12},
	"limit_zone": {
		NGXHTTPMainConf | NGXConfTake3},
	"match": {
		NGXHTTPMainConf | NGXConfBlock | NGXConfTake1,
		NGXStreamMainConf | NGXConfBlock | NGXConfTake1},
	"memcached_force_ranges": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfFlag},
	"mp4_limit_rate": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"mp4_limit_rate_after": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"ntlm": {
		NGXHTTPUpsConf | NGXConfNoArgs},
	"proxy_cache_purge": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"queue": {
		NGXHTTPUpsConf | NGXConfTake12},
	"scgi_cache_purge": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"session_log": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake1},
	"session_log_format": {
		NGXHTTPMainConf | NGXConf2More},
	"session_log_zone": {
		NGXHTTPMainConf | NGXConfTake23 | NGXConfTake4 | NGXConfTake5 | NGXConfTake6},
	"state": {
		NGXHTTPUpsConf | NGXConfTake1,
		NGXStreamUpsConf | NGXConfTake1},
	"status": {
		NGXHTTPLocConf | NGXConfNoArgs},
	"status_format": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConfTake12},
	"status_zone": {
		NGXHTTPSrvConf | NGXConfTake1,
		NGXStreamSrvConf | NGXConfTake1,
		NGXHTTPLocConf | NGXConfTake1,
		NGXHTTPLifConf | NGXConfTake1},
	"sticky": {
		NGXHTTPUpsConf | NGXConf1More},
	"sticky_cookie_insert": {
		NGXHTTPUpsConf | NGXConfTake1234},
	"upstream_conf": {
		NGXHTTPLocConf | NGXConfNoArgs},
	"uwsgi_cache_purge": {
		NGXHTTPMainConf | NGXHTTPSrvConf | NGXHTTPLocConf | NGXConf1More},
	"zone_sync": {
		NGXStreamSrvConf | NGXConfNoArgs},
	"zone_sync_buffers": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake2},
	"zone_sync_connect_retry_interval": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"zone_sync_connect_timeout": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"zone_sync_interval": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"zone_sync_recv_buffer_size": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"zone_sync_server": {
		NGXStreamSrvConf | NGXConfTake12},
	"zone_sync_ssl": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfFlag},
	"zone_sync_ssl_certificate": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"zone_sync_ssl_certificate_key": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"zone_sync_ssl_ciphers": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"zone_sync_ssl_crl": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"zone_sync_ssl_name": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"zone_sync_ssl_password_file": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"zone_sync_ssl_protocols": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConf1More},
	"zone_sync_ssl_server_name": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfFlag},
	"zone_sync_ssl_trusted_certificate": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"zone_sync_ssl_verify": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfFlag},
	"zone_sync_ssl_verify_depth": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
	"zone_sync_timeout": {
		NGXStreamMainConf | NGXStreamSrvConf | NGXConfTake1},
}

// contexts registers every context tuple the grammar recognizes, keyed by
// the joined tuple. Tuples absent from this registry belong to third-party
// modules and are not context-checked at all.
var contexts = map[string]uint{
	blockCtx():                                   NGXMainConf,
	blockCtx("events"):                           NGXEventConf,
	blockCtx("mail"):                             NGXMailMainConf,
	blockCtx("mail", "server"):                   NGXMailSrvConf,
	blockCtx("stream"):                           NGXStreamMainConf,
	blockCtx("stream", "server"):                 NGXStreamSrvConf,
	blockCtx("stream", "upstream"):               NGXStreamUpsConf,
	blockCtx("http"):                             NGXHTTPMainConf,
	blockCtx("http", "server"):                   NGXHTTPSrvConf,
	blockCtx("http", "location"):                 NGXHTTPLocConf,
	blockCtx("http", "upstream"):                 NGXHTTPUpsConf,
	blockCtx("http", "server", "if"):             NGXHTTPSifConf,
	blockCtx("http", "location", "if"):           NGXHTTPLifConf,
	blockCtx("http", "location", "limit_except"): NGXHTTPLmtConf,
}

// freeformContexts hold data entries (hostname maps, MIME type lists, CIDR
// tables, charset mappings) rather than directives, so nothing inside them
// is validated.
var freeformContexts = map[string]bool{
	blockCtx("http", "map"):         true,
	blockCtx("http", "types"):       true,
	blockCtx("http", "geo"):         true,
	blockCtx("http", "charset_map"): true,
	blockCtx("stream", "map"):       true,
	blockCtx("stream", "geo"):       true,
}

func blockCtx(ctx ...string) string {
	return strings.Join(ctx, ">")
}

// enterBlockCtx derives the context for the block opened by stmt. Location
// blocks nest syntactically but share one set of grammar rules, so any
// location under http collapses to ("http", "location") instead of growing
// the tuple.
func enterBlockCtx(stmt *Stmt, ctx []string) []string {
	if len(ctx) > 0 && ctx[0] == "http" && stmt.Directive == "location" {
		return []string{"http", "location"}
	}
	c := make([]string, len(ctx)+1)
	copy(c, ctx)
	c[len(c)-1] = stmt.Directive
	return c
}

// Analyze validates a single statement against the directive knowledge base.
// term is the token that terminated the statement (";" or "{"). ctx is the
// chain of enclosing block names. With strict set, unknown directive names
// are an error; checkCtx and checkArgs toggle the context-membership and
// argument-count checks. The returned error is always a *ParseError with a
// directive kind.
func Analyze(fname string, stmt *Stmt, term string, ctx []string, strict, checkCtx, checkArgs bool) error {
	if freeformContexts[blockCtx(ctx...)] {
		return nil
	}
	masks, known := directives[stmt.Directive]
	if !known {
		if claimedByExtension(stmt.Directive) {
			return nil
		}
		if strict {
			return newUnknownErr(fmt.Sprintf("unknown directive %q", stmt.Directive), fname, stmt.Line)
		}
		return nil
	}
	ctxMask, ctxKnown := contexts[blockCtx(ctx...)]
	if ctxKnown && checkCtx {
		valid := masks[:0:0]
		for _, m := range masks {
			if m&ctxMask != 0 {
				valid = append(valid, m)
			}
		}
		if len(valid) == 0 {
			return newContextErr(fmt.Sprintf("%q directive is not allowed here", stmt.Directive), fname, stmt.Line)
		}
		masks = valid
	}
	if !checkArgs {
		return nil
	}

	n := uint(len(stmt.Args))
	var what string
	for i := len(masks) - 1; i >= 0; i-- {
		mask := masks[i]
		if mask&NGXConfBlock != 0 && term != "{" {
			what = fmt.Sprintf("directive %q has no opening \"{\"", stmt.Directive)
			continue
		}
		if mask&NGXConfBlock == 0 && term != ";" {
			what = fmt.Sprintf("directive %q is not terminated by \";\"", stmt.Directive)
			continue
		}
		if (n <= 7 && mask&(1<<n) != 0) ||
			(mask&NGXConfFlag != 0 && n == 1 && validFlag(stmt.Args[0])) ||
			(mask&NGXConfAny != 0) ||
			(mask&NGXConf1More != 0 && n >= 1) ||
			(mask&NGXConf2More != 0 && n >= 2) {
			return nil
		}
		if mask&NGXConfFlag != 0 && n == 1 && !validFlag(stmt.Args[0]) {
			what = fmt.Sprintf("invalid value %q in %q directive, it must be \"on\" or \"off\"", stmt.Args[0], stmt.Directive)
		} else {
			what = fmt.Sprintf("invalid number of arguments in %q directive", stmt.Directive)
		}
	}
	return newArgumentsErr(what, fname, stmt.Line)
}

// InDirectives reports whether name is in the directive knowledge base.
func InDirectives(name string) bool {
	_, ok := directives[name]
	return ok
}

// InContexts reports whether ctx is a registered context tuple.
func InContexts(ctx []string) bool {
	_, ok := contexts[blockCtx(ctx...)]
	return ok
}

func validFlag(s string) bool {
	switch strings.ToLower(s) {
	case "on", "off":
		return true
	default:
		return false
	}
}
