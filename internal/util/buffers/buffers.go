package buffers

// BufferSize is the size of the scratch buffer used when piping data between streams.
const BufferSize = 32 * 1024
