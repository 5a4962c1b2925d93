// Package mirror replica los archivos de datos hacia una carpeta remota vía
// SFTP después de cada guardado local. Es el colaborador "espejo remoto" del
// sistema: best-effort, nunca participa de la durabilidad local.
package mirror

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/sftp"
	"github.com/tu-usuario/almacen-api/pkg/config"
	"golang.org/x/crypto/ssh"
)

// SFTPMirror sube archivos a una carpeta remota. Abre una conexión por push:
// los pushes son poco frecuentes (uno por guardado) y así no hay conexión
// ociosa que mantener viva.
type SFTPMirror struct {
	cfg config.MirrorConfig
}

// NewSFTPMirror construye el espejo con la configuración dada.
func NewSFTPMirror(cfg config.MirrorConfig) *SFTPMirror {
	return &SFTPMirror{cfg: cfg}
}

// Push sube el archivo local a RemoteDir conservando el nombre base.
func (m *SFTPMirror) Push(ctx context.Context, localPath string) error {
	client, closeAll, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer closeAll()

	if err := client.MkdirAll(m.cfg.RemoteDir); err != nil {
		return fmt.Errorf("sftp: crear carpeta remota %s: %w", m.cfg.RemoteDir, err)
	}

	src, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("sftp: abrir archivo local: %w", err)
	}
	defer src.Close()

	remotePath := path.Join(m.cfg.RemoteDir, filepath.Base(localPath))
	dst, err := client.Create(remotePath)
	if err != nil {
		return fmt.Errorf("sftp: crear %s: %w", remotePath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("sftp: copiar a %s: %w", remotePath, err)
	}
	return nil
}

// connect abre la conexión SSH+SFTP respetando el deadline del contexto.
func (m *SFTPMirror) connect(ctx context.Context) (*sftp.Client, func(), error) {
	auth, err := m.authMethods()
	if err != nil {
		return nil, nil, err
	}
	sshCfg := &ssh.ClientConfig{
		User: m.cfg.User,
		Auth: auth,
		// El espejo apunta a un servidor propio configurado por env; no se
		// verifica el host key. No usar contra servidores no controlados.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "tcp", m.cfg.Addr())
	if err != nil {
		return nil, nil, fmt.Errorf("sftp: conectar a %s: %w", m.cfg.Addr(), err)
	}
	sshConn, chans, reqs, err := ssh.NewClientConn(conn, m.cfg.Addr(), sshCfg)
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("sftp: handshake ssh: %w", err)
	}
	sshClient := ssh.NewClient(sshConn, chans, reqs)

	client, err := sftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return nil, nil, fmt.Errorf("sftp: abrir subsistema: %w", err)
	}
	closeAll := func() {
		client.Close()
		sshClient.Close()
	}
	return client, closeAll, nil
}

func (m *SFTPMirror) authMethods() ([]ssh.AuthMethod, error) {
	if m.cfg.KeyPath != "" {
		key, err := os.ReadFile(m.cfg.KeyPath)
		if err != nil {
			return nil, fmt.Errorf("sftp: leer llave privada: %w", err)
		}
		signer, err := ssh.ParsePrivateKey(key)
		if err != nil {
			return nil, fmt.Errorf("sftp: parsear llave privada: %w", err)
		}
		return []ssh.AuthMethod{ssh.PublicKeys(signer)}, nil
	}
	if m.cfg.Password != "" {
		return []ssh.AuthMethod{ssh.Password(m.cfg.Password)}, nil
	}
	return nil, fmt.Errorf("sftp: sin credenciales (MIRROR_SFTP_PASSWORD o MIRROR_SFTP_KEY_PATH)")
}
